package patients

import "time"

// TravelPlan representa un viaje declarado por el paciente.
// Return nil = viaje abierto (sin fecha de regreso).
type TravelPlan struct {
	Destination string
	Departure   time.Time
	Return      *time.Time
}

// PreviousVaccination es una dosis ya administrada.
type PreviousVaccination struct {
	VaccineName string
	Date        time.Time
	NextDue     *time.Time
}

// Patient representa el perfil que alimenta el pipeline de evaluación.
// Todos los campos derivados (recomendaciones, riesgo, agenda) se
// recalculan completos en cada evaluación; acá solo vive el perfil.
type Patient struct {
	ID   string
	Name string

	Age       int
	BirthDate *time.Time

	Conditions []string
	Allergies  []string

	TravelPlans  []TravelPlan
	Vaccinations []PreviousVaccination

	CreatedAt time.Time
	UpdatedAt time.Time
}
