package risk

import (
	"fmt"
	"strings"

	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/domain/recommend"
)

const (
	baselineScore = 20
	maxScore      = 100

	advancedAgeThreshold = 65
	infantAgeThreshold   = 2
)

// Score agrega los factores demográficos, clínicos, de viaje y de
// brechas de vacunación en una lista de factores y un score global.
// Score = min(100, 20 + suma de impactos); sin factores queda en 20.
func Score(p patients.Patient, recs []recommend.Recommendation) ([]Factor, int) {
	factors := make([]Factor, 0)

	// Edad: los umbrales no pueden cumplirse a la vez.
	switch {
	case p.Age >= advancedAgeThreshold:
		factors = append(factors, Factor{
			Category:    "Demographic",
			Description: "Advanced Age (65+)",
			Level:       LevelHigh,
			Impact:      25,
			Rationale:   "Immune response declines with age; higher complication rates",
		})
	case p.Age <= infantAgeThreshold:
		factors = append(factors, Factor{
			Category:    "Demographic",
			Description: "Infant/Toddler (0-2)",
			Level:       LevelHigh,
			Impact:      20,
			Rationale:   "Immature immune system; incomplete primary series",
		})
	}

	for _, cond := range p.Conditions {
		switch {
		case matchesAny(cond, HighRiskConditions):
			factors = append(factors, Factor{
				Category:    "Clinical",
				Description: cond,
				Level:       LevelHigh,
				Impact:      20,
				Rationale:   "High-risk chronic condition",
			})
		case matchesAny(cond, MediumRiskConditions):
			factors = append(factors, Factor{
				Category:    "Clinical",
				Description: cond,
				Level:       LevelMedium,
				Impact:      10,
				Rationale:   "Moderate-risk condition",
			})
		}
	}

	// Por viaje: alto se chequea primero, un destino cuenta una vez.
	for _, tp := range p.TravelPlans {
		switch {
		case matchesAny(tp.Destination, HighRiskRegions):
			factors = append(factors, Factor{
				Category:    "Travel",
				Description: fmt.Sprintf("Travel to %s", tp.Destination),
				Level:       LevelHigh,
				Impact:      15,
				Rationale:   "Destination has elevated disease exposure",
			})
		case matchesAny(tp.Destination, MediumRiskRegions):
			factors = append(factors, Factor{
				Category:    "Travel",
				Description: fmt.Sprintf("Travel to %s", tp.Destination),
				Level:       LevelMedium,
				Impact:      8,
				Rationale:   "Destination has moderate disease exposure",
			})
		}
	}

	if highCount := countHighPriority(recs); highCount > 0 {
		level := LevelMedium
		if highCount >= 2 {
			level = LevelHigh
		}
		factors = append(factors, Factor{
			Category:    "Vaccination Gaps",
			Description: fmt.Sprintf("%d high-priority vaccination(s) pending", highCount),
			Level:       level,
			Impact:      5 * highCount,
			Rationale:   "Outstanding high-priority vaccinations increase exposure risk",
		})
	}

	score := baselineScore
	for _, f := range factors {
		score += f.Impact
	}
	if score > maxScore {
		score = maxScore
	}

	return factors, score
}

func countHighPriority(recs []recommend.Recommendation) int {
	n := 0
	for _, r := range recs {
		if r.Priority == recommend.PriorityHigh {
			n++
		}
	}
	return n
}

func matchesAny(label string, set []string) bool {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return false
	}
	for _, s := range set {
		s = strings.ToLower(s)
		if strings.Contains(label, s) || strings.Contains(s, label) {
			return true
		}
	}
	return false
}
