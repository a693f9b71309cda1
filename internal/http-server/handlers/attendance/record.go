package attendance

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Record(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.attendance")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.AttendanceInput
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request body: %v", err)))
			return
		}

		err := handler.RecordAttendance(r.Context(), req)
		if err != nil {
			logger.Error("failed to record attendance", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		render.JSON(w, r, response.Ok("Attendance recorded"))
	}
}
