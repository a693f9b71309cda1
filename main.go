package main

import (
	"CollegeAdmin/entity"
	"CollegeAdmin/impl/core"
	"CollegeAdmin/internal/config"
	"CollegeAdmin/internal/database"
	"CollegeAdmin/internal/http-server/api"
	"CollegeAdmin/internal/lib/logger"
	"CollegeAdmin/internal/lib/sl"
	"CollegeAdmin/internal/service/auth"
	"CollegeAdmin/internal/ws"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting college admin", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)
	handler.SetInfo(entity.About{
		Name:        conf.College.Name,
		Tagline:     conf.College.Tagline,
		Mission:     conf.College.Mission,
		Established: conf.College.Established,
		Description: conf.College.Description,
		Programs:    conf.College.Programs,
	}, entity.Contact{
		Address:     conf.College.Address,
		Email:       conf.College.Email,
		Phone:       conf.College.Phone,
		OfficeHours: conf.College.OfficeHours,
	})

	hub := ws.NewHub(lg)
	go hub.Run()
	handler.SetEventPublisher(hub)

	authService := auth.NewAuthService(lg)

	// the service keeps running without a database; store endpoints answer 503
	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		authService.SetRepository(db)
		handler.SetRepository(db)
		handler.SetAuthService(authService)
		lg.With(
			slog.String("url", db.URL()),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.Mongo.Timeout)*time.Second)
		if err = db.EnsureIndexes(ctx); err != nil {
			lg.With(sl.Err(err)).Error("ensure indexes")
		}
		if _, err = authService.SeedAdmin(ctx, conf.Admin.Name, conf.Admin.Email, conf.Admin.Password); err != nil {
			lg.With(sl.Err(err)).Error("seed default admin")
		}
		cancel()
	} else {
		lg.Warn("database not configured, store endpoints will answer 503")
	}

	server, err := api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server init", sl.Err(err))
		return
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		lg.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			lg.Error("server shutdown", sl.Err(err))
		}
		if db != nil {
			_ = db.Close(ctx)
		}
	}()

	// *** blocking start with http server ***
	err = server.Start()
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Info("service stopped")
}
