package admission

import (
	"CollegeAdmin/internal/lib/api/response"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func Get(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admission, err := handler.GetAdmission(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		render.JSON(w, r, admission)
	}
}
