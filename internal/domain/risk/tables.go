package risk

// Tablas de reglas como sets nombrados, para mantener la superficie
// de reglas auditable y testeable por separado.

// HighRiskConditions suman +20 cada una.
var HighRiskConditions = []string{
	"Diabetes",
	"Heart Disease",
	"Immunocompromised",
	"Chronic Kidney Disease",
	"COPD",
}

// MediumRiskConditions suman +10 cada una.
var MediumRiskConditions = []string{
	"Asthma",
	"Hypertension",
	"Obesity",
	"Smoking",
	"Pregnancy",
}

// HighRiskRegions suman +15 por viaje (se chequean primero).
var HighRiskRegions = []string{
	"Sub-Saharan Africa",
	"South Asia",
	"Southeast Asia",
	"Tropical South America",
}

// MediumRiskRegions suman +8 por viaje.
var MediumRiskRegions = []string{
	"Eastern Europe",
	"Central America",
	"Middle East",
	"North Africa",
}
