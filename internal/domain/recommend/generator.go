package recommend

import (
	"sort"
	"strings"
	"time"

	"vaccination-planner/internal/domain/catalog"
	"vaccination-planner/internal/domain/eligibility"
	"vaccination-planner/internal/domain/patients"
)

// QualifyingConditions habilita la clase high-risk: sin al menos una
// de estas condiciones (o edad >= 65) el candidato se descarta.
var QualifyingConditions = []string{
	"Diabetes",
	"Heart Disease",
	"Immunocompromised",
	"Chronic Kidney Disease",
	"COPD",
}

const (
	urgentTravelWindowDays = 30
	highRiskQualifyingAge  = 65
)

// Generate evalúa el catálogo completo contra el paciente y emite cero
// o una recomendación por vacuna elegible. Salida ordenada por peso de
// prioridad descendente, estable (empates conservan orden de catálogo).
func Generate(defs []catalog.VaccineDefinition, outbreaks []string, p patients.Patient, now time.Time) []Recommendation {
	out := make([]Recommendation, 0, len(defs))

	for _, def := range defs {
		if !eligibility.IsEligible(def, p) {
			continue
		}
		rec, ok := buildRecommendation(def, outbreaks, p, now)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() > out[j].Priority.Weight()
	})

	return out
}

func buildRecommendation(def catalog.VaccineDefinition, outbreaks []string, p patients.Patient, now time.Time) (Recommendation, bool) {
	rec := Recommendation{
		VaccineName:  def.Name,
		Interactions: def.Contraindications,
	}

	switch def.Class {
	case catalog.ClassHighRisk:
		if !qualifiesHighRisk(p) {
			return Recommendation{}, false
		}
		rec.Priority = PriorityHigh
		rec.RiskScore = 85
		rec.Reason = "Recommended for patients with high-risk conditions"
		rec.DueDate = now

	case catalog.ClassTravel:
		if urgentTravel(p, now) {
			rec.Priority = PriorityHigh
			rec.RiskScore = 80
			rec.Reason = "Required for upcoming travel"
			rec.DueDate = now.AddDate(0, 0, 7)
		} else {
			rec.Priority = PriorityMedium
			rec.RiskScore = 65
			rec.Reason = "Recommended for planned travel"
			rec.DueDate = now.AddDate(0, 0, 14)
		}

	case catalog.ClassOutbreak:
		if !matchesOutbreak(def.Diseases, outbreaks) {
			return Recommendation{}, false
		}
		rec.Priority = PriorityHigh
		rec.RiskScore = 90
		rec.Reason = "Active outbreak reported for covered disease"
		rec.DueDate = now.AddDate(0, 0, 3)

	default: // routine
		rec.Priority = PriorityMedium
		rec.RiskScore = 60
		rec.Reason = "Routine vaccination recommended for age group"
		rec.DueDate = now
	}

	// El override por dosis previa gana siempre sobre la rama de clase.
	if next, ok := nextDoseFromHistory(def, p, now); ok {
		rec.Priority = PriorityLow
		rec.RiskScore = 30
		rec.Reason = "Next dose due based on previous vaccination"
		rec.DueDate = next
	}

	return rec, true
}

func qualifiesHighRisk(p patients.Patient) bool {
	if p.Age >= highRiskQualifyingAge {
		return true
	}
	for _, cond := range p.Conditions {
		for _, q := range QualifyingConditions {
			if labelsOverlap(cond, q) {
				return true
			}
		}
	}
	return false
}

// urgentTravel: algún viaje con salida dentro de los próximos 30 días.
// Las salidas ya pasadas también cuentan: un viaje en curso implica
// exposición inmediata, así que la urgencia se mantiene (las notas de
// agenda, en cambio, solo mencionan viajes todavía futuros).
func urgentTravel(p patients.Patient, now time.Time) bool {
	limit := now.AddDate(0, 0, urgentTravelWindowDays)
	for _, tp := range p.TravelPlans {
		if !tp.Departure.After(limit) {
			return true
		}
	}
	return false
}

func matchesOutbreak(diseases, outbreaks []string) bool {
	for _, d := range diseases {
		for _, o := range outbreaks {
			if strings.EqualFold(strings.TrimSpace(d), strings.TrimSpace(o)) {
				return true
			}
		}
	}
	return false
}

// nextDoseFromHistory busca una dosis previa de la misma vacuna
// (match por containment de nombre). Si la dosis es reciente (menos
// días que el intervalo) y la próxima fecha sigue en el futuro,
// devuelve esa fecha para el override low/30.
func nextDoseFromHistory(def catalog.VaccineDefinition, p patients.Patient, now time.Time) (time.Time, bool) {
	if def.IntervalDays <= 0 {
		return time.Time{}, false
	}
	for _, pv := range p.Vaccinations {
		if !labelsOverlap(pv.VaccineName, def.Name) {
			continue
		}
		daysSince := int(now.Sub(pv.Date).Hours() / 24)
		if daysSince >= def.IntervalDays {
			continue
		}
		next := pv.Date.AddDate(0, 0, def.IntervalDays)
		if next.After(now) {
			return next, true
		}
	}
	return time.Time{}, false
}

func labelsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
