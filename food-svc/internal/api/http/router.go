package httpapi

import (
	"log/slog"
	"net/http"

	"foods-backend/food-svc/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := mux.NewRouter()
	r.Use(CaptureRoute)
	handler.RegisterRoutes(r)
	return cors.Default().Handler(RequestID(Instrument(logger, m)(r)))
}

func NewMetricsRouter(m *metrics.Metrics) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	return r
}

func StartServer(addr string, handler http.Handler, logger *slog.Logger) error {
	logger.Info("food service listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}
