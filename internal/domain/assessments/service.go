package assessments

import (
	"context"
	"time"

	"vaccination-planner/internal/domain/catalog"
	"vaccination-planner/internal/domain/eligibility"
	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/domain/recommend"
	"vaccination-planner/internal/domain/reminders"
	"vaccination-planner/internal/domain/risk"
	"vaccination-planner/internal/domain/schedule"
)

// Service orquesta el pipeline de decisión completo:
// elegibilidad → recomendaciones → {riesgo, agenda} → recordatorios.
// Cada etapa es una función pura de sus inputs; acá solo se encadenan.
type Service struct {
	patientsSvc *patients.Service

	defs      []catalog.VaccineDefinition
	outbreaks []string

	// Anticipación de recordatorios configurada a nivel servicio
	// (REMINDER_ADVANCE_DAYS); aplica cuando las preferencias del
	// request no traen advance_days.
	advanceDays int

	now func() time.Time
}

func NewService(patientsSvc *patients.Service, reminderAdvanceDays int) *Service {
	return &Service{
		patientsSvc: patientsSvc,
		defs:        catalog.Default(),
		outbreaks:   catalog.ActiveOutbreaks(),
		advanceDays: reminderAdvanceDays,
		now:         time.Now,
	}
}

// VaccineEligibility es el resultado de la compuerta de elegibilidad
// para una entrada del catálogo.
type VaccineEligibility struct {
	VaccineName string
	Eligible    bool
}

// Result es la salida completa de una evaluación. Reemplaza por
// completo cualquier resultado anterior; nada se actualiza in-place.
type Result struct {
	Eligibility     []VaccineEligibility
	Recommendations []recommend.Recommendation
	RiskFactors     []risk.Factor
	OverallRisk     int
	Appointments    []schedule.Appointment
	Reminders       []reminders.Reminder
}

// Evaluate corre el pipeline sobre un perfil en memoria.
func (s *Service) Evaluate(p patients.Patient, prefs reminders.Preferences) Result {
	now := s.now()

	elig := make([]VaccineEligibility, 0, len(s.defs))
	for _, def := range s.defs {
		elig = append(elig, VaccineEligibility{
			VaccineName: def.Name,
			Eligible:    eligibility.IsEligible(def, p),
		})
	}

	recs := recommend.Generate(s.defs, s.outbreaks, p, now)
	factors, score := risk.Score(p, recs)
	appts := schedule.Optimize(recs, p, now)

	if prefs.AdvanceDays <= 0 {
		prefs.AdvanceDays = s.advanceDays
	}
	rems := reminders.Plan(recs, prefs, now)

	return Result{
		Eligibility:     elig,
		Recommendations: recs,
		RiskFactors:     factors,
		OverallRisk:     score,
		Appointments:    appts,
		Reminders:       rems,
	}
}

// EvaluatePatient corre el pipeline sobre un perfil almacenado.
func (s *Service) EvaluatePatient(ctx context.Context, patientID string, prefs reminders.Preferences) (Result, error) {
	p, err := s.patientsSvc.GetByID(ctx, patientID)
	if err != nil {
		return Result{}, err
	}
	return s.Evaluate(p, prefs), nil
}

// Catalog expone el catálogo de referencia que usa esta instancia.
func (s *Service) Catalog() []catalog.VaccineDefinition {
	return s.defs
}
