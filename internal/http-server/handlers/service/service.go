package service

import (
	"CollegeAdmin/internal/lib/api/response"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func Root(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok("College administration backend is running"))
	}
}

// StoreCheck reports database connectivity; it always answers 200.
func StoreCheck(_ *slog.Logger, handler Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := handler.StoreStatus(r.Context())

		render.JSON(w, r, struct {
			Backend string `json:"backend"`
			Store   any    `json:"database"`
		}{
			Backend: "running",
			Store:   status,
		})
	}
}
