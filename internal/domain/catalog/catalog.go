package catalog

// PriorityClass categoriza la vacuna en el catálogo y gobierna la
// prioridad y fecha objetivo de la recomendación generada.
type PriorityClass string

const (
	ClassRoutine  PriorityClass = "routine"
	ClassHighRisk PriorityClass = "high-risk"
	ClassTravel   PriorityClass = "travel"
	ClassOutbreak PriorityClass = "outbreak"
)

// VaccineDefinition es una entrada inmutable del catálogo.
//
// AgeGroups usa la gramática "Birth+", "N+" o "N-M"; cualquier otro
// literal se trata como elegible (fail open).
// IntervalDays 0 = dosis única de por vida.
type VaccineDefinition struct {
	Name        string
	Description string

	AgeGroups         []string
	Contraindications []string

	IntervalDays int
	Booster      bool

	// Regiones que gatillan la vacuna para clase travel.
	// Vacío = relevante para cualquier destino.
	TravelRegions []string

	Class    PriorityClass
	Diseases []string
}

// Default devuelve el catálogo de referencia. Las reglas son
// ilustrativas, no validadas clínicamente.
func Default() []VaccineDefinition {
	return []VaccineDefinition{
		{
			Name:              "Influenza (Flu)",
			Description:       "Annual influenza vaccine",
			AgeGroups:         []string{"6+"},
			Contraindications: []string{"Egg Allergy", "Guillain-Barre Syndrome"},
			IntervalDays:      365,
			Booster:           true,
			Class:             ClassRoutine,
			Diseases:          []string{"Influenza"},
		},
		{
			Name:              "Tdap (Tetanus, Diphtheria, Pertussis)",
			Description:       "Combined booster, every 10 years",
			AgeGroups:         []string{"11+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      3650,
			Booster:           true,
			Class:             ClassRoutine,
			Diseases:          []string{"Tetanus", "Diphtheria", "Pertussis"},
		},
		{
			Name:         "MMR (Measles, Mumps, Rubella)",
			Description:  "Two-dose live vaccine series",
			AgeGroups:    []string{"1-6", "19-55"},
			Contraindications: []string{
				"Immunocompromised",
				"Pregnancy",
			},
			IntervalDays: 28,
			Class:        ClassRoutine,
			Diseases:     []string{"Measles", "Mumps", "Rubella"},
		},
		{
			Name:              "Shingles (Zoster)",
			Description:       "Recombinant zoster vaccine",
			AgeGroups:         []string{"50+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      60,
			Class:             ClassRoutine,
			Diseases:          []string{"Shingles"},
		},
		{
			Name:              "Pneumococcal (PPSV23)",
			Description:       "Pneumococcal polysaccharide vaccine",
			AgeGroups:         []string{"65+", "2-64"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      1825,
			Class:             ClassHighRisk,
			Diseases:          []string{"Pneumococcal Disease"},
		},
		{
			Name:              "Meningococcal ACWY",
			Description:       "Quadrivalent meningococcal conjugate",
			AgeGroups:         []string{"11+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      1825,
			Class:             ClassHighRisk,
			Diseases:          []string{"Meningococcal Disease"},
		},
		{
			Name:              "Hepatitis B",
			Description:       "Three-dose hepatitis B series",
			AgeGroups:         []string{"Birth+"},
			Contraindications: []string{"Yeast Allergy"},
			IntervalDays:      28,
			Class:             ClassRoutine,
			Diseases:          []string{"Hepatitis B"},
		},
		{
			Name:              "Hepatitis A",
			Description:       "Two-dose hepatitis A series",
			AgeGroups:         []string{"1+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      180,
			TravelRegions:     []string{"Central America", "South America", "Africa", "South Asia", "Southeast Asia"},
			Class:             ClassTravel,
			Diseases:          []string{"Hepatitis A"},
		},
		{
			Name:              "Yellow Fever",
			Description:       "Single-dose live vaccine, required for entry to some countries",
			AgeGroups:         []string{"9-59"},
			Contraindications: []string{"Egg Allergy", "Immunocompromised", "Thymus Disorder"},
			IntervalDays:      0,
			TravelRegions:     []string{"Sub-Saharan Africa", "Tropical South America"},
			Class:             ClassTravel,
			Diseases:          []string{"Yellow Fever"},
		},
		{
			Name:              "Japanese Encephalitis",
			Description:       "Two-dose series for prolonged rural stays",
			AgeGroups:         []string{"2+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      28,
			TravelRegions:     []string{"Southeast Asia", "East Asia", "South Asia"},
			Class:             ClassTravel,
			Diseases:          []string{"Japanese Encephalitis"},
		},
		{
			Name:              "Typhoid",
			Description:       "Single-dose injectable typhoid vaccine",
			AgeGroups:         []string{"2+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      730,
			TravelRegions:     []string{"South Asia", "Southeast Asia", "Sub-Saharan Africa", "Central America"},
			Class:             ClassTravel,
			Diseases:          []string{"Typhoid Fever"},
		},
		{
			Name:              "COVID-19 Booster",
			Description:       "Updated COVID-19 booster",
			AgeGroups:         []string{"12+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose", "Myocarditis"},
			IntervalDays:      180,
			Booster:           true,
			Class:             ClassOutbreak,
			Diseases:          []string{"COVID-19"},
		},
		{
			Name:              "Mpox",
			Description:       "Two-dose mpox vaccine",
			AgeGroups:         []string{"18+"},
			Contraindications: []string{"Severe Allergic Reaction to Previous Dose"},
			IntervalDays:      28,
			Class:             ClassOutbreak,
			Diseases:          []string{"Mpox"},
		},
	}
}

// ActiveOutbreaks es la lista fija de brotes activos.
// Fixture: acá iría el feed epidemiológico real.
func ActiveOutbreaks() []string {
	return []string{
		"COVID-19",
		"Measles",
	}
}
