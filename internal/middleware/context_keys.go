package middleware

// contextKey is the type for values this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

const (
	requestIDHeader     = "X-Request-ID"
	sessionIDHeader     = "X-Session-ID"
	coordinatorIDHeader = "X-Coordinator-ID"
)
