package main

import (
	"net/http"
	"os"
	"time"

	"vaccination-planner/internal/config"
	"vaccination-planner/internal/platform/logger"
	"vaccination-planner/internal/router"
)

// @title vaccination-planner API
// @version 1.0
// @description Planificador de vacunación: elegibilidad, recomendaciones, riesgo, agenda y recordatorios.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	l := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	r := router.NewRouter(router.Options{
		Logger:              l,
		ReminderAdvanceDays: cfg.ReminderAdvanceDays,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	l.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
