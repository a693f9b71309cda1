package events

import (
	"CollegeAdmin/internal/lib/sl"
	"CollegeAdmin/internal/ws"
	"log/slog"
	"net/http"
)

func Subscribe(log *slog.Logger, hub *ws.Hub, auth ws.Authenticator) http.HandlerFunc {
	logger := log.With(sl.Module("http.handlers.events"))
	return func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, auth, logger, w, r)
	}
}
