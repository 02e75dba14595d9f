package assessments

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vaccination-planner/internal/domain/catalog"
	"vaccination-planner/internal/domain/patients"
	"vaccination-planner/internal/domain/recommend"
	"vaccination-planner/internal/domain/reminders"
	"vaccination-planner/internal/domain/risk"
	"vaccination-planner/internal/domain/schedule"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/patients/{patientID}/assessment", evaluatePatientHandler(svc))
	r.Post("/assessments", evaluateHandler(svc))
	r.Get("/catalog", catalogHandler(svc))
}

type preferencesPayload struct {
	EmailEnabled bool   `json:"email_enabled"`
	EmailAddress string `json:"email_address"`
	SMSEnabled   bool   `json:"sms_enabled"`
	PhoneNumber  string `json:"phone_number"`
	PushEnabled  bool   `json:"push_enabled"`
	AdvanceDays  int    `json:"advance_days"`
}

type assessPatientRequest struct {
	Preferences preferencesPayload `json:"preferences"`
}

type statelessPatientPayload struct {
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Conditions  []string `json:"conditions"`
	Allergies   []string `json:"allergies"`
	TravelPlans []struct {
		Destination string  `json:"destination"`
		Departure   string  `json:"departure"`
		Return      *string `json:"return,omitempty"`
	} `json:"travel_plans"`
	Vaccinations []struct {
		VaccineName string `json:"vaccine_name"`
		Date        string `json:"date"`
	} `json:"vaccinations"`
}

type assessRequest struct {
	Patient     statelessPatientPayload `json:"patient"`
	Preferences preferencesPayload      `json:"preferences"`
}

type eligibilityResponse struct {
	VaccineName string `json:"vaccine_name"`
	Eligible    bool   `json:"eligible"`
}

type recommendationResponse struct {
	VaccineName  string    `json:"vaccine_name"`
	Priority     string    `json:"priority"`
	DueDate      time.Time `json:"due_date"`
	Reason       string    `json:"reason"`
	RiskScore    int       `json:"risk_score"`
	Interactions []string  `json:"interactions"`
}

type riskFactorResponse struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Impact      int    `json:"impact"`
	Rationale   string `json:"rationale"`
}

type appointmentResponse struct {
	Date            time.Time                `json:"date"`
	Recommendations []recommendationResponse `json:"recommendations"`
	Conflicts       []string                 `json:"conflicts"`
	Notes           string                   `json:"notes"`
}

type reminderResponse struct {
	ID              string    `json:"id"`
	VaccineName     string    `json:"vaccine_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	FireAt          time.Time `json:"fire_at"`
	Channel         string    `json:"channel"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
}

type assessmentResponse struct {
	Eligibility     []eligibilityResponse    `json:"eligibility"`
	Recommendations []recommendationResponse `json:"recommendations"`
	RiskFactors     []riskFactorResponse     `json:"risk_factors"`
	OverallRisk     int                      `json:"overall_risk_score"`
	Appointments    []appointmentResponse    `json:"appointments"`
	Reminders       []reminderResponse       `json:"reminders"`
}

type vaccineResponse struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	AgeGroups         []string `json:"age_groups"`
	Contraindications []string `json:"contraindications"`
	IntervalDays      int      `json:"interval_days"`
	Booster           bool     `json:"booster"`
	TravelRegions     []string `json:"travel_regions"`
	Class             string   `json:"priority_class"`
	Diseases          []string `json:"diseases"`
}

// evaluatePatientHandler godoc
// @Summary Evaluar un paciente almacenado
// @Description Corre el pipeline completo (elegibilidad, recomendaciones, riesgo, agenda, recordatorios) sobre el perfil indicado.
// @Tags assessments
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body assessPatientRequest true "Preferencias de notificación"
// @Success 200 {object} assessmentResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID}/assessment [post]
func evaluatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		result, err := svc.EvaluatePatient(r.Context(), chi.URLParam(r, "patientID"), toPreferences(req.Preferences))
		if err != nil {
			if errors.Is(err, patients.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAssessmentResponse(result))
	}
}

// evaluateHandler godoc
// @Summary Evaluación stateless
// @Description Variante sin estado: el body trae el perfil completo más preferencias. Nada queda almacenado.
// @Tags assessments
// @Accept json
// @Produce json
// @Param payload body assessRequest true "Perfil y preferencias"
// @Success 200 {object} assessmentResponse
// @Failure 400 {string} string "invalid json / fechas inválidas"
// @Router /assessments [post]
func evaluateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := toPatient(req.Patient)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toAssessmentResponse(svc.Evaluate(p, toPreferences(req.Preferences))))
	}
}

// catalogHandler godoc
// @Summary Catálogo de vacunas
// @Description Datos de referencia inmutables que consume el motor de elegibilidad.
// @Tags catalog
// @Produce json
// @Success 200 {array} vaccineResponse
// @Router /catalog [get]
func catalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := svc.Catalog()
		out := make([]vaccineResponse, 0, len(defs))
		for _, d := range defs {
			out = append(out, toVaccineResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type badDateError string

func (e badDateError) Error() string { return string(e) }

func toPatient(in statelessPatientPayload) (patients.Patient, error) {
	age := in.Age
	if age < 0 {
		// Input numérico malformado se normaliza antes del core.
		age = 0
	}

	p := patients.Patient{
		Name:       in.Name,
		Age:        age,
		Conditions: in.Conditions,
		Allergies:  in.Allergies,
	}

	for _, tp := range in.TravelPlans {
		dep, err := time.Parse("2006-01-02", tp.Departure)
		if err != nil {
			return patients.Patient{}, badDateError("travel_plans.departure must be YYYY-MM-DD")
		}
		plan := patients.TravelPlan{Destination: tp.Destination, Departure: dep}
		if tp.Return != nil && *tp.Return != "" {
			ret, err := time.Parse("2006-01-02", *tp.Return)
			if err != nil {
				return patients.Patient{}, badDateError("travel_plans.return must be YYYY-MM-DD")
			}
			plan.Return = &ret
		}
		p.TravelPlans = append(p.TravelPlans, plan)
	}

	for _, pv := range in.Vaccinations {
		date, err := time.Parse("2006-01-02", pv.Date)
		if err != nil {
			return patients.Patient{}, badDateError("vaccinations.date must be YYYY-MM-DD")
		}
		p.Vaccinations = append(p.Vaccinations, patients.PreviousVaccination{
			VaccineName: pv.VaccineName,
			Date:        date,
		})
	}

	return p, nil
}

func toPreferences(in preferencesPayload) reminders.Preferences {
	return reminders.Preferences{
		EmailEnabled: in.EmailEnabled,
		EmailAddress: in.EmailAddress,
		SMSEnabled:   in.SMSEnabled,
		PhoneNumber:  in.PhoneNumber,
		PushEnabled:  in.PushEnabled,
		AdvanceDays:  in.AdvanceDays,
	}
}

func toAssessmentResponse(res Result) assessmentResponse {
	out := assessmentResponse{
		Eligibility:     make([]eligibilityResponse, 0, len(res.Eligibility)),
		Recommendations: make([]recommendationResponse, 0, len(res.Recommendations)),
		RiskFactors:     make([]riskFactorResponse, 0, len(res.RiskFactors)),
		OverallRisk:     res.OverallRisk,
		Appointments:    make([]appointmentResponse, 0, len(res.Appointments)),
		Reminders:       make([]reminderResponse, 0, len(res.Reminders)),
	}

	for _, e := range res.Eligibility {
		out.Eligibility = append(out.Eligibility, eligibilityResponse{
			VaccineName: e.VaccineName,
			Eligible:    e.Eligible,
		})
	}
	for _, rec := range res.Recommendations {
		out.Recommendations = append(out.Recommendations, toRecommendationResponse(rec))
	}
	for _, f := range res.RiskFactors {
		out.RiskFactors = append(out.RiskFactors, toRiskFactorResponse(f))
	}
	for _, a := range res.Appointments {
		out.Appointments = append(out.Appointments, toAppointmentResponse(a))
	}
	for _, rem := range res.Reminders {
		out.Reminders = append(out.Reminders, toReminderResponse(rem))
	}

	return out
}

func toRecommendationResponse(rec recommend.Recommendation) recommendationResponse {
	return recommendationResponse{
		VaccineName:  rec.VaccineName,
		Priority:     string(rec.Priority),
		DueDate:      rec.DueDate,
		Reason:       rec.Reason,
		RiskScore:    rec.RiskScore,
		Interactions: rec.Interactions,
	}
}

func toRiskFactorResponse(f risk.Factor) riskFactorResponse {
	return riskFactorResponse{
		Category:    f.Category,
		Description: f.Description,
		Level:       string(f.Level),
		Impact:      f.Impact,
		Rationale:   f.Rationale,
	}
}

func toAppointmentResponse(a schedule.Appointment) appointmentResponse {
	recs := make([]recommendationResponse, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		recs = append(recs, toRecommendationResponse(rec))
	}
	return appointmentResponse{
		Date:            a.Date,
		Recommendations: recs,
		Conflicts:       a.Conflicts,
		Notes:           a.Notes,
	}
}

func toReminderResponse(rem reminders.Reminder) reminderResponse {
	return reminderResponse{
		ID:              rem.ID,
		VaccineName:     rem.VaccineName,
		AppointmentDate: rem.AppointmentDate,
		FireAt:          rem.FireAt,
		Channel:         string(rem.Channel),
		Status:          string(rem.Status),
		Priority:        string(rem.Priority),
	}
}

func toVaccineResponse(d catalog.VaccineDefinition) vaccineResponse {
	return vaccineResponse{
		Name:              d.Name,
		Description:       d.Description,
		AgeGroups:         d.AgeGroups,
		Contraindications: d.Contraindications,
		IntervalDays:      d.IntervalDays,
		Booster:           d.Booster,
		TravelRegions:     d.TravelRegions,
		Class:             string(d.Class),
		Diseases:          d.Diseases,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
