package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/graphexplorer/core/internal/ctxlog"
)

// Recover turns a handler panic into a 500 JSON response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				ctxlog.FromContext(r.Context()).Error("panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error":"internal server error","code":"internal"}`)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
