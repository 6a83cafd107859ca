// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel error values shared by all
// repositories so higher layers can distinguish failure scenarios with
// errors.Is instead of inspecting driver-specific errors. ErrDuplicate
// maps MySQL duplicate-key violations (error 1062) raised by the unique
// indexes; ErrNotFound covers lookups and mutations that matched no row.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert violates a unique index.
// The unique indexes, not the workflow pre-checks, are what make
// concurrent check-then-insert sequences safe.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned when no row matches the given id or lookup
// value. Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// isDuplicateKey reports whether err is a MySQL unique-constraint
// violation (error number 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
