package schedule

import (
	"time"

	"vaccination-planner/internal/domain/recommend"
)

// Appointment es una cita propuesta con una o más vacunas compatibles.
// Se construye completa en cada corrida del optimizador; un cambio de
// input regenera toda la agenda, no hay update incremental.
type Appointment struct {
	Date            time.Time
	Recommendations []recommend.Recommendation
	Conflicts       []string
	Notes           string
}
