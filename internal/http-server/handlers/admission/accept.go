package admission

import (
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type AcceptResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
}

func Accept(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.admission")

		id := chi.URLParam(r, "id")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("admission_id", id),
		)

		studentID, err := handler.AcceptAdmission(r.Context(), id)
		if err != nil {
			logger.Error("failed to accept admission", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		logger.Debug("admission accepted", slog.String("student_id", studentID))
		render.JSON(w, r, AcceptResponse{
			Message:   "Admission accepted and student created",
			StudentID: studentID,
		})
	}
}
