package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	model "github.com/noorbagus/louva-app-sub000/internal/models"
)

// метрики

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyalty_http_requests_total",
			Help: "Кол-во HTTP запросов",
		},
		[]string{"path", "code"},
	)

	httpRequestsError = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loyalty_http_errors_total",
			Help: "Кол-во ошибочных HTTP запросов",
		},
		[]string{"path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loyalty_http_request_duration_seconds",
			Help:    "Продолжительность HTTP запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "code"},
	)
)

// логируем вызовы
type logResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *logResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func MiddlewareLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			reqtime := time.Now()
			logrw := &logResponseWriter{w, 200}
			next.ServeHTTP(logrw, r)

			labels := prometheus.Labels{
				"path": r.URL.Path,
				"code": strconv.Itoa(logrw.status),
			}
			httpRequestsTotal.With(labels).Inc()
			httpRequestDuration.With(labels).Observe(time.Since(reqtime).Seconds())

			if logrw.status >= http.StatusBadRequest {
				httpRequestsError.With(labels).Inc()
			}
		})
	}
}

type ctxKey int

const principalKey ctxKey = 0

// Принципал запроса из контекста
func Principal(req *http.Request) model.Principal {
	p, _ := req.Context().Value(principalKey).(model.Principal)
	return p
}

// Клиентский принципал из заголовка X-Customer-ID
func (h *LoyaltyHandler) MiddlewareCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Customer-ID"))
		if err != nil {
			http.Error(w, "X-Customer-ID header is required", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, model.Principal{Customer: id})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Админский контур: заголовок X-Admin-ID
func (h *LoyaltyHandler) MiddlewareAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-ID") == "" {
			http.Error(w, "X-Admin-ID header is required", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, model.Principal{Admin: true})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
