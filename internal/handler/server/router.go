package server

import (
	"net/http"

	"github.com/bagdasarian/devteam-dashboard/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /api/views/{view}", h.GetView)
	mux.HandleFunc("GET /api/forms/{collection}", h.GetForm)
	mux.HandleFunc("GET /api/{collection}", h.GetAll)
	mux.HandleFunc("POST /api/{collection}", h.Create)
	mux.HandleFunc("PUT /api/{collection}/{id}", h.Update)
	mux.HandleFunc("POST /api/{collection}/{id}/delete", h.RequestDelete)
	mux.HandleFunc("POST /api/deletions/{token}", h.CompleteDelete)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
