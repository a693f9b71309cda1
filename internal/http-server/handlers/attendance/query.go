package attendance

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Query(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.attendance")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter := entity.AttendanceFilter{
			StudentID: r.URL.Query().Get("student_id"),
		}
		if onDate := r.URL.Query().Get("on_date"); onDate != "" {
			date, err := entity.ParseDate(onDate)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			filter.Date = date
		}

		records, err := handler.QueryAttendance(r.Context(), filter)
		if err != nil {
			logger.Error("failed to query attendance", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		logger.Debug("attendance listed", slog.Int("count", len(records)))
		render.JSON(w, r, records)
	}
}
