package admission

import (
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.admission")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		status := r.URL.Query().Get("status")

		admissions, err := handler.ListAdmissions(r.Context(), status)
		if err != nil {
			logger.Error("failed to list admissions", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		logger.Debug("admissions listed", slog.Int("count", len(admissions)))
		render.JSON(w, r, admissions)
	}
}
