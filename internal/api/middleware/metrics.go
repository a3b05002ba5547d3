package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPRecorder приёмник HTTP метрик
type HTTPRecorder interface {
	ObserveHTTPRequest(method, route string, status int, seconds float64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware считает запросы и длительность по шаблону маршрута mux,
// чтобы ID в пути не раздували кардинальность
func MetricsMiddleware(recorder HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			recorder.ObserveHTTPRequest(r.Method, route, rec.status, time.Since(start).Seconds())
		})
	}
}
