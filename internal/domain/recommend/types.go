package recommend

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight es el peso de ordenamiento de la prioridad.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Recommendation es el candidato emitido por el generador para una
// vacuna elegible. Se regenera completo en cada evaluación; un cambio
// en el perfil reemplaza (no mergea) la lista anterior.
type Recommendation struct {
	VaccineName string
	Priority    Priority
	DueDate     time.Time
	Reason      string
	RiskScore   int

	// Interacciones/contraindicaciones conocidas, copiadas del catálogo.
	Interactions []string
}
