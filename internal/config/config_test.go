package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntOrDefaultsWhenUnset(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	assert.Equal(t, 10, intOr("DB_MAX_OPEN_CONNS", 10))
}

func TestIntOrReadsEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	assert.Equal(t, 42, intOr("DB_MAX_OPEN_CONNS", 10))
}
