package middleware

import "net/http"

// Chain is the standard middleware stack. Auth runs first so the resolved
// user key is in context by the time the limiter picks its bucket and the
// request log reads its identity fields.
func Chain(next http.Handler) http.Handler {
	return AuthMiddleware(LoggingMiddleware(RateLimitMiddleware(next)))
}
