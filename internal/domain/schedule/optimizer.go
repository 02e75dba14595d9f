package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/domain/recommend"
)

// LiveVaccines no pueden compartir cita: requieren separación de 4
// semanas entre sí.
var LiveVaccines = []string{
	"Yellow Fever",
	"Japanese Encephalitis",
}

const (
	// Ventana para fusionar una vacuna en una cita existente.
	mergeWindow = 24 * time.Hour
	// Corrimiento al detectar conflicto.
	conflictDeferDays = 7
	// Viajes dentro de esta ventana se mencionan en las notas.
	tripNoteWindowDays = 60
)

// Optimize convierte la lista priorizada de recomendaciones en una
// secuencia de citas, fusionando vacunas compatibles y difiriendo
// conflictos. Determinístico, una sola pasada sobre el input ordenado
// por prioridad desc y fecha objetivo asc.
func Optimize(recs []recommend.Recommendation, p patients.Patient, now time.Time) []Appointment {
	sorted := make([]recommend.Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority.Weight() != sorted[j].Priority.Weight() {
			return sorted[i].Priority.Weight() > sorted[j].Priority.Weight()
		}
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})

	appts := make([]*Appointment, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))

	// Cursor monotónico: las citas avanzan en el tiempo aunque haya
	// fechas objetivo en el pasado.
	cursor := now

	for _, rec := range sorted {
		key := strings.ToLower(strings.TrimSpace(rec.VaccineName))
		if seen[key] {
			// Duplicado en el input: gana la primera aparición.
			continue
		}
		seen[key] = true

		candidate := cursor
		if rec.DueDate.After(candidate) {
			candidate = rec.DueDate
		}

		existing := findNearby(appts, candidate)

		var conflicts []string
		if existing != nil {
			conflicts = detectConflicts(rec, existing.Recommendations)
		}

		note := buildNotes(rec, p, now)

		switch {
		case len(conflicts) > 0:
			// Conflicto: cita nueva 7 días después, etiquetada.
			deferred := &Appointment{
				Date:            candidate.AddDate(0, 0, conflictDeferDays),
				Recommendations: []recommend.Recommendation{rec},
				Conflicts:       conflicts,
				Notes:           joinNotes(note, "rescheduled due to vaccine interactions"),
			}
			appts = append(appts, deferred)

		case existing != nil:
			existing.Recommendations = append(existing.Recommendations, rec)
			existing.Notes = joinNotes(existing.Notes, note)

		default:
			appts = append(appts, &Appointment{
				Date:            candidate,
				Recommendations: []recommend.Recommendation{rec},
				Conflicts:       []string{},
				Notes:           note,
			})
		}

		cursor = candidate.AddDate(0, 0, 1)
	}

	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// findNearby devuelve la cita existente a menos de 24h del candidato.
func findNearby(appts []*Appointment, candidate time.Time) *Appointment {
	for _, a := range appts {
		d := a.Date.Sub(candidate)
		if d < 0 {
			d = -d
		}
		if d <= mergeWindow {
			return a
		}
	}
	return nil
}

// detectConflicts chequea la vacuna nueva contra las ya asignadas a la
// cita candidata.
func detectConflicts(rec recommend.Recommendation, assigned []recommend.Recommendation) []string {
	conflicts := make([]string, 0)

	for _, other := range assigned {
		// Dos vacunas vivas no comparten cita.
		if isLiveVaccine(rec.VaccineName) && isLiveVaccine(other.VaccineName) {
			conflicts = append(conflicts, fmt.Sprintf(
				"%s and %s: live vaccines, requires 4-week separation",
				rec.VaccineName, other.VaccineName,
			))
		}

		// Misma clase de enfermedad (hepatitis) en vacunas distintas.
		if isHepatitis(rec.VaccineName) && isHepatitis(other.VaccineName) &&
			!strings.EqualFold(rec.VaccineName, other.VaccineName) {
			conflicts = append(conflicts, fmt.Sprintf(
				"%s and %s: different hepatitis vaccines, consider combination vaccine",
				rec.VaccineName, other.VaccineName,
			))
		}
	}

	return conflicts
}

func isLiveVaccine(name string) bool {
	for _, lv := range LiveVaccines {
		if strings.EqualFold(strings.TrimSpace(name), lv) {
			return true
		}
	}
	return false
}

func isHepatitis(name string) bool {
	return strings.Contains(strings.ToLower(name), "hepatitis")
}

// buildNotes arma las notas de agenda de una recomendación:
// urgencia, viaje próximo e interacciones conocidas (hasta dos).
func buildNotes(rec recommend.Recommendation, p patients.Patient, now time.Time) string {
	parts := make([]string, 0, 3)

	if rec.Priority == recommend.PriorityHigh {
		parts = append(parts, "schedule as soon as possible")
	}

	if travelRelated(rec) {
		if tp, ok := upcomingTrip(p, now); ok {
			parts = append(parts, fmt.Sprintf(
				"complete before trip to %s on %s",
				tp.Destination, tp.Departure.Format("2006-01-02"),
			))
		}
	}

	if len(rec.Interactions) > 0 {
		shown := rec.Interactions
		if len(shown) > 2 {
			shown = shown[:2]
		}
		parts = append(parts, "check interactions: "+strings.Join(shown, ", "))
	}

	return strings.Join(parts, "; ")
}

// travelRelated: el nombre o el motivo mencionan viaje.
func travelRelated(rec recommend.Recommendation) bool {
	hay := strings.ToLower(rec.VaccineName + " " + rec.Reason)
	return strings.Contains(hay, "travel")
}

// upcomingTrip devuelve el primer viaje con salida dentro de 60 días.
// Solo salidas estrictamente futuras: un viaje ya iniciado puede seguir
// marcando urgencia en el generador, pero "complete before trip" como
// nota dejaría de tener sentido.
func upcomingTrip(p patients.Patient, now time.Time) (patients.TravelPlan, bool) {
	limit := now.AddDate(0, 0, tripNoteWindowDays)
	for _, tp := range p.TravelPlans {
		if tp.Departure.After(now) && !tp.Departure.After(limit) {
			return tp, true
		}
	}
	return patients.TravelPlan{}, false
}

func joinNotes(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}
