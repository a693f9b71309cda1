package admission

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type SubmitResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func Submit(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.admission")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.AdmissionInput
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		id, err := handler.SubmitAdmission(r.Context(), req)
		if err != nil {
			logger.With(sl.Err(err)).Debug("submit admission")
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		logger.Debug("admission submitted", slog.String("id", id))
		render.JSON(w, r, SubmitResponse{
			Message: "Admission submitted",
			ID:      id,
		})
	}
}
