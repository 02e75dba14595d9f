package risk

import (
	"testing"
	"time"

	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/domain/recommend"
)

func TestScore_BaselineWithoutFactors(t *testing.T) {
	p := patients.Patient{Name: "Ana", Age: 30}

	factors, score := Score(p, nil)

	if len(factors) != 0 {
		t.Fatalf("expected no factors, got %#v", factors)
	}
	if score != 20 {
		t.Fatalf("expected baseline 20, got %d", score)
	}
}

func TestScore_AdvancedAgeFactor(t *testing.T) {
	p := patients.Patient{Name: "Elena", Age: 70, Conditions: []string{"Heart Disease"}}

	factors, score := Score(p, nil)

	var ageFactor *Factor
	for i := range factors {
		if factors[i].Description == "Advanced Age (65+)" {
			ageFactor = &factors[i]
		}
	}
	if ageFactor == nil {
		t.Fatalf("expected Advanced Age (65+) factor, got %#v", factors)
	}
	if ageFactor.Impact != 25 || ageFactor.Level != LevelHigh {
		t.Errorf("expected high/+25, got %s/+%d", ageFactor.Level, ageFactor.Impact)
	}

	// 20 base + 25 edad + 20 condición high-risk
	if score != 65 {
		t.Errorf("expected score 65, got %d", score)
	}
}

func TestScore_InfantFactor(t *testing.T) {
	factors, score := Score(patients.Patient{Name: "Beba", Age: 1}, nil)

	if len(factors) != 1 || factors[0].Impact != 20 || factors[0].Level != LevelHigh {
		t.Fatalf("expected single high/+20 infant factor, got %#v", factors)
	}
	if score != 40 {
		t.Errorf("expected score 40, got %d", score)
	}
}

func TestScore_ConditionClassification(t *testing.T) {
	p := patients.Patient{
		Name:       "Caro",
		Age:        40,
		Conditions: []string{"Diabetes", "Asthma", "Hay Fever"},
	}

	factors, score := Score(p, nil)

	// Diabetes high +20, Asthma medium +10, Hay Fever no clasifica
	if len(factors) != 2 {
		t.Fatalf("expected 2 condition factors, got %#v", factors)
	}
	if score != 50 {
		t.Errorf("expected 20+20+10=50, got %d", score)
	}
}

func TestScore_TravelClassification_HighCheckedFirst(t *testing.T) {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	p := patients.Patient{
		Name: "Dani",
		Age:  30,
		TravelPlans: []patients.TravelPlan{
			{Destination: "Sub-Saharan Africa", Departure: dep},
			{Destination: "Eastern Europe", Departure: dep},
			{Destination: "Antarctica", Departure: dep},
		},
	}

	factors, score := Score(p, nil)

	if len(factors) != 2 {
		t.Fatalf("expected 2 travel factors, got %#v", factors)
	}
	if factors[0].Impact != 15 || factors[0].Level != LevelHigh {
		t.Errorf("expected high-risk region +15, got %#v", factors[0])
	}
	if factors[1].Impact != 8 || factors[1].Level != LevelMedium {
		t.Errorf("expected medium-risk region +8, got %#v", factors[1])
	}
	if score != 43 {
		t.Errorf("expected 20+15+8=43, got %d", score)
	}
}

func TestScore_VaccinationGapFactor(t *testing.T) {
	recs := []recommend.Recommendation{
		{VaccineName: "A", Priority: recommend.PriorityHigh},
		{VaccineName: "B", Priority: recommend.PriorityHigh},
		{VaccineName: "C", Priority: recommend.PriorityMedium},
	}

	factors, score := Score(patients.Patient{Name: "Eli", Age: 30}, recs)

	if len(factors) != 1 {
		t.Fatalf("expected single gap factor, got %#v", factors)
	}
	if factors[0].Impact != 10 {
		t.Errorf("expected impact 5*2=10, got %d", factors[0].Impact)
	}
	if score != 30 {
		t.Errorf("expected 20+10=30, got %d", score)
	}
}

func TestScore_ClampedAt100(t *testing.T) {
	recs := make([]recommend.Recommendation, 0, 10)
	for i := 0; i < 10; i++ {
		recs = append(recs, recommend.Recommendation{Priority: recommend.PriorityHigh})
	}

	p := patients.Patient{
		Name:       "Franca",
		Age:        80,
		Conditions: []string{"Diabetes", "Heart Disease", "COPD", "Immunocompromised"},
		TravelPlans: []patients.TravelPlan{
			{Destination: "Sub-Saharan Africa", Departure: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	_, score := Score(p, recs)

	if score != 100 {
		t.Fatalf("expected clamp at 100, got %d", score)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	// Propiedad: para cualquier perfil el score queda en [0,100].
	ages := []int{0, 1, 2, 30, 64, 65, 99}
	conditionSets := [][]string{nil, {"Diabetes"}, {"Diabetes", "COPD", "Asthma", "Obesity"}}

	for _, age := range ages {
		for _, conds := range conditionSets {
			_, score := Score(patients.Patient{Name: "p", Age: age, Conditions: conds}, nil)
			if score < 0 || score > 100 {
				t.Fatalf("score out of bounds: age=%d conds=%v score=%d", age, conds, score)
			}
			if score < 20 {
				t.Fatalf("score below baseline: %d", score)
			}
		}
	}
}
