package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/m04kA/SMC-CarMarketWeb/pkg/traceid"
)

// TraceID берет X-Trace-ID из запроса или генерирует новый и кладет его в контекст
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceid.Header)
		if id == "" {
			id = traceid.New()
		}
		w.Header().Set(traceid.Header, id)
		next.ServeHTTP(w, r.WithContext(traceid.WithContext(r.Context(), id)))
	})
}

// AccessLog пишет строку лога на каждый запрос и перехватывает панику
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if p := recover(); p != nil {
					logger.Error("%s %s - panic: %v trace_id=%s\n%s",
						r.Method, r.URL.Path, p, traceid.FromContext(r.Context()), debug.Stack())
					http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
				logger.Info("%s %s %d %s trace_id=%s",
					r.Method, r.URL.Path, rec.status, time.Since(started), traceid.FromContext(r.Context()))
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
