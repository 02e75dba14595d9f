package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createPatientHandler(svc))
		pr.Get("/", listPatientsHandler(svc))
		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Put("/{patientID}", updatePatientHandler(svc))
	})
}

type travelPlanPayload struct {
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`        // YYYY-MM-DD
	Return      *string `json:"return,omitempty"` // YYYY-MM-DD, opcional
}

type vaccinationPayload struct {
	VaccineName string  `json:"vaccine_name"`
	Date        string  `json:"date"`               // YYYY-MM-DD
	NextDue     *string `json:"next_due,omitempty"` // YYYY-MM-DD, opcional
}

type patientRequest struct {
	Name         string               `json:"name"`
	Age          int                  `json:"age"`
	BirthDate    string               `json:"birth_date"` // YYYY-MM-DD opcional
	Conditions   []string             `json:"conditions"`
	Allergies    []string             `json:"allergies"`
	TravelPlans  []travelPlanPayload  `json:"travel_plans"`
	Vaccinations []vaccinationPayload `json:"vaccinations"`
}

type patientResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Age          int                  `json:"age"`
	BirthDate    *time.Time           `json:"birth_date,omitempty"`
	Conditions   []string             `json:"conditions"`
	Allergies    []string             `json:"allergies"`
	TravelPlans  []travelPlanPayload  `json:"travel_plans"`
	Vaccinations []vaccinationPayload `json:"vaccinations"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// createPatientHandler godoc
// @Summary Registrar perfil de paciente
// @Description Crea el perfil que alimenta el pipeline de evaluación. Fechas en formato YYYY-MM-DD.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body patientRequest true "Perfil del paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {string} string "invalid json / fechas inválidas / reglas de negocio"
// @Router /patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// updatePatientHandler reemplaza el perfil completo (PUT, sin merge):
// el pipeline regenera todo lo derivado a partir del perfil vigente.
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := toCreateInput(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "patientID"), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func toCreateInput(req patientRequest) (CreateInput, error) {
	in := CreateInput{
		Name:       req.Name,
		Age:        req.Age,
		Conditions: req.Conditions,
		Allergies:  req.Allergies,
	}

	if req.BirthDate != "" {
		t, err := parseDate(req.BirthDate)
		if err != nil {
			return CreateInput{}, errors.New("birth_date must be YYYY-MM-DD")
		}
		in.BirthDate = &t
	}

	for _, tp := range req.TravelPlans {
		dep, err := parseDate(tp.Departure)
		if err != nil {
			return CreateInput{}, errors.New("travel_plans.departure must be YYYY-MM-DD")
		}
		plan := TravelPlan{Destination: tp.Destination, Departure: dep}
		if tp.Return != nil && *tp.Return != "" {
			ret, err := parseDate(*tp.Return)
			if err != nil {
				return CreateInput{}, errors.New("travel_plans.return must be YYYY-MM-DD")
			}
			plan.Return = &ret
		}
		in.TravelPlans = append(in.TravelPlans, plan)
	}

	for _, pv := range req.Vaccinations {
		date, err := parseDate(pv.Date)
		if err != nil {
			return CreateInput{}, errors.New("vaccinations.date must be YYYY-MM-DD")
		}
		rec := PreviousVaccination{VaccineName: pv.VaccineName, Date: date}
		if pv.NextDue != nil && *pv.NextDue != "" {
			nd, err := parseDate(*pv.NextDue)
			if err != nil {
				return CreateInput{}, errors.New("vaccinations.next_due must be YYYY-MM-DD")
			}
			rec.NextDue = &nd
		}
		in.Vaccinations = append(in.Vaccinations, rec)
	}

	return in, nil
}

func toPatientResponse(p Patient) patientResponse {
	resp := patientResponse{
		ID:           p.ID,
		Name:         p.Name,
		Age:          p.Age,
		BirthDate:    p.BirthDate,
		Conditions:   p.Conditions,
		Allergies:    p.Allergies,
		TravelPlans:  make([]travelPlanPayload, 0, len(p.TravelPlans)),
		Vaccinations: make([]vaccinationPayload, 0, len(p.Vaccinations)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for _, tp := range p.TravelPlans {
		payload := travelPlanPayload{
			Destination: tp.Destination,
			Departure:   tp.Departure.Format("2006-01-02"),
		}
		if tp.Return != nil {
			s := tp.Return.Format("2006-01-02")
			payload.Return = &s
		}
		resp.TravelPlans = append(resp.TravelPlans, payload)
	}

	for _, pv := range p.Vaccinations {
		payload := vaccinationPayload{
			VaccineName: pv.VaccineName,
			Date:        pv.Date.Format("2006-01-02"),
		}
		if pv.NextDue != nil {
			s := pv.NextDue.Format("2006-01-02")
			payload.NextDue = &s
		}
		resp.Vaccinations = append(resp.Vaccinations, payload)
	}

	return resp
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
