package catalog

import "testing"

func TestDefault_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range Default() {
		if v.Name == "" {
			t.Fatalf("vaccine with empty name")
		}
		if seen[v.Name] {
			t.Fatalf("duplicate catalog entry %q", v.Name)
		}
		seen[v.Name] = true
	}
}

func TestDefault_KnownClasses(t *testing.T) {
	valid := map[PriorityClass]bool{
		ClassRoutine:  true,
		ClassHighRisk: true,
		ClassTravel:   true,
		ClassOutbreak: true,
	}

	for _, v := range Default() {
		if !valid[v.Class] {
			t.Errorf("%s: unknown priority class %q", v.Name, v.Class)
		}
		if len(v.AgeGroups) == 0 {
			t.Errorf("%s: missing age groups", v.Name)
		}
		if v.IntervalDays < 0 {
			t.Errorf("%s: negative interval", v.Name)
		}
	}
}

func TestTravelVaccinesCarryTriggerRegions(t *testing.T) {
	// Clase travel sin regiones gatillo es válida (relevante para todo
	// destino) pero en el catálogo actual todas las declaran.
	for _, v := range Default() {
		if v.Class == ClassTravel && len(v.TravelRegions) == 0 {
			t.Errorf("%s: travel vaccine without trigger regions", v.Name)
		}
	}
}
