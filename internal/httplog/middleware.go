package httplog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware logs one line per served request at the debug level.
func Middleware(logger DebugLogger, timeNow func() time.Time) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := timeNow()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debug(r.Method + " " + r.URL.RequestURI() + " " +
				strconv.Itoa(status) + " " + strconv.Itoa(ww.BytesWritten()) + "B " +
				timeNow().Sub(start).String() + " from " + r.RemoteAddr)
		})
	}
}
