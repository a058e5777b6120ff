package api

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/oviedoj/userbase-be/internal/api/envelope"
)

// Recover converts handler panics into the generic 500 envelope so an
// uncaught failure never kills the process or leaks a bare connection reset.
// The stack trace is included in the response only in development mode.
func Recover(log zerolog.Logger, development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				stack := debug.Stack()
				log.Error().
					Interface("panic", rvr).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", stack).
					Msg("Recovered from panic in handler")

				errs := map[string]string{"server": "Internal server error"}
				if development {
					envelope.WriteErrorStack(w, http.StatusInternalServerError, "Generic error occurred", errs, string(stack))
					return
				}
				envelope.WriteError(w, http.StatusInternalServerError, "Generic error occurred", errs)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
