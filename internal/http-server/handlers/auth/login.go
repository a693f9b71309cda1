package auth

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/internal/lib/api/response"
	"CollegeAdmin/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type LoginResponse struct {
	Message string               `json:"message"`
	User    *entity.AdminSummary `json:"user"`
}

func Login(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.auth")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.LoginRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Debug("invalid login request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Email and password are required"))
			return
		}

		user, err := handler.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.With(sl.Secret("email", req.Email), sl.Err(err)).Info("login rejected")
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(response.Detail(err)))
			return
		}

		render.JSON(w, r, LoginResponse{
			Message: "Login successful",
			User:    user,
		})
	}
}
