package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vaccination-planner/docs"
	mem "vaccination-planner/internal/adapters/storage/memory"
	"vaccination-planner/internal/domain/assessments"
	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/middleware"
	"vaccination-planner/internal/platform/logger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (tests)

	// Anticipación por defecto de recordatorios (config
	// REMINDER_ADVANCE_DAYS). <= 0 deja actuar el default del planner.
	ReminderAdvanceDays int
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Storage in-memory: el perfil vive solo mientras corre el proceso.
	patientRepo := mem.NewPatientRepo()

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	assessSvc := assessments.NewService(patientsSvc, opts.ReminderAdvanceDays)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc)
	assessments.RegisterRoutes(r, assessSvc)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
