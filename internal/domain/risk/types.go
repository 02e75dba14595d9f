package risk

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Factor es un factor de riesgo identificado. Efímero: se recalcula
// en cada evaluación, nunca se persiste.
type Factor struct {
	Category    string
	Description string
	Level       Level
	Impact      int
	Rationale   string
}
