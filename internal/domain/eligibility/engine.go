package eligibility

import (
	"strconv"
	"strings"

	"vaccination-planner/internal/domain/catalog"
	"vaccination-planner/internal/domain/patients"
)

// IsEligible decide si el paciente puede recibir la vacuna.
// Tres compuertas, todas deben pasar: edad, contraindicaciones y
// necesidad de viaje (solo clase travel con regiones gatillo).
// Determinística, sin efectos; listas vacías = sin restricción.
func IsEligible(v catalog.VaccineDefinition, p patients.Patient) bool {
	if !ageEligible(v.AgeGroups, p.Age) {
		return false
	}
	if hasContraindication(v.Contraindications, p) {
		return false
	}
	if !travelRelevant(v, p) {
		return false
	}
	return true
}

func ageEligible(rules []string, age int) bool {
	if len(rules) == 0 {
		return true
	}
	for _, rule := range rules {
		if matchesAgeRule(rule, age) {
			return true
		}
	}
	return false
}

// matchesAgeRule evalúa la gramática de grupos etarios:
//   - "Birth+"        siempre true
//   - "N+"            age >= N
//   - "N-M"           N <= age <= M
//   - cualquier otro  true (fail open, default permisivo)
func matchesAgeRule(rule string, age int) bool {
	rule = strings.TrimSpace(rule)

	if strings.EqualFold(rule, "Birth+") {
		return true
	}

	if strings.HasSuffix(rule, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(rule, "+"))
		if err != nil {
			return true
		}
		return age >= min
	}

	if lo, hi, ok := strings.Cut(rule, "-"); ok {
		min, errLo := strconv.Atoi(strings.TrimSpace(lo))
		max, errHi := strconv.Atoi(strings.TrimSpace(hi))
		if errLo != nil || errHi != nil {
			return true
		}
		return age >= min && age <= max
	}

	return true
}

// hasContraindication compara cada contraindicación contra alergias y
// condiciones con containment bidireccional case-insensitive.
// Matcher ruidoso a propósito: ante solapamiento parcial preferimos
// falso positivo (no elegible) antes que recomendar de más.
func hasContraindication(contraindications []string, p patients.Patient) bool {
	for _, c := range contraindications {
		for _, a := range p.Allergies {
			if labelsOverlap(c, a) {
				return true
			}
		}
		for _, cond := range p.Conditions {
			if labelsOverlap(c, cond) {
				return true
			}
		}
	}
	return false
}

// travelRelevant: solo las vacunas travel con regiones gatillo exigen
// un destino que matchee; el resto pasa directo.
func travelRelevant(v catalog.VaccineDefinition, p patients.Patient) bool {
	if v.Class != catalog.ClassTravel || len(v.TravelRegions) == 0 {
		return true
	}
	for _, tp := range p.TravelPlans {
		for _, region := range v.TravelRegions {
			if labelsOverlap(tp.Destination, region) {
				return true
			}
		}
	}
	return false
}

func labelsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
