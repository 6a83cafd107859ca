package service

import "errors"

// ErrUnauthenticated is returned when a mutating operation is invoked
// without an authenticated identity. The session middleware already
// gates the routes; this is the workflow-level backstop. Handlers
// translate it into a redirect to the login page.
var ErrUnauthenticated = errors.New("authentication required")
