package info

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func About(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, handler.About())
	}
}

func Contact(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, handler.Contact())
	}
}
