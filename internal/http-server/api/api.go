package api

import (
	"CollegeAdmin/internal/config"
	"CollegeAdmin/internal/http-server/handlers/admission"
	"CollegeAdmin/internal/http-server/handlers/attendance"
	"CollegeAdmin/internal/http-server/handlers/auth"
	"CollegeAdmin/internal/http-server/handlers/errors"
	"CollegeAdmin/internal/http-server/handlers/events"
	"CollegeAdmin/internal/http-server/handlers/info"
	"CollegeAdmin/internal/http-server/handlers/service"
	"CollegeAdmin/internal/http-server/handlers/student"
	"CollegeAdmin/internal/http-server/middleware/logging"
	"CollegeAdmin/internal/http-server/middleware/metrics"
	"CollegeAdmin/internal/http-server/middleware/timeout"
	"CollegeAdmin/internal/lib/sl"
	"CollegeAdmin/internal/ws"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	ws.Authenticator
	service.Service
	info.Core
	auth.Core
	admission.Core
	student.Core
	attendance.Core
}

// NewRouter wires every route. hub may be nil, in which case the event feed is not mounted.
func NewRouter(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub, reg *prometheus.Registry) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logging.New(log))
	router.Use(metrics.New(reg).Handler)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   conf.Listen.Origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(timeout.Timeout(conf.Listen.Timeout))
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/", service.Root(log))
		r.Get("/test", service.StoreCheck(log, handler))

		r.Route("/api", func(api chi.Router) {
			api.Route("/info", func(r chi.Router) {
				r.Get("/about", info.About(log, handler))
				r.Get("/contact", info.Contact(log, handler))
			})
			api.Route("/auth", func(r chi.Router) {
				r.Post("/login", auth.Login(log, handler))
			})
			api.Route("/admissions", func(r chi.Router) {
				r.Post("/", admission.Submit(log, handler))
				r.Get("/", admission.List(log, handler))
				r.Get("/{id}", admission.Get(log, handler))
				r.Post("/{id}/accept", admission.Accept(log, handler))
			})
			api.Route("/students", func(r chi.Router) {
				r.Get("/", student.List(log, handler))
				r.Get("/{id}", student.Get(log, handler))
			})
			api.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendance.Record(log, handler))
				r.Get("/", attendance.Query(log, handler))
			})
			if hub != nil {
				api.Get("/events", events.Subscribe(log, hub, handler))
			}
		})
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) (*Server, error) {
	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(conf, log, handler, hub, reg),
		ErrorLog: httpLog,
	}

	return &server, nil
}

// Start blocks serving requests until the server is shut down.
func (s *Server) Start() error {
	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	s.log.Info("starting api server", slog.String("address", serverAddress))

	err = s.httpServer.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
