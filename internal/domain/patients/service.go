package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Age          int
	BirthDate    *time.Time
	Conditions   []string
	Allergies    []string
	TravelPlans  []TravelPlan
	Vaccinations []PreviousVaccination
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Patient, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Patient{}, ErrInvalidInput
	}
	if err := validateTravelPlans(in.TravelPlans); err != nil {
		return Patient{}, err
	}

	now := s.now()
	p := Patient{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Age:          normalizeAge(in.Age),
		BirthDate:    in.BirthDate,
		Conditions:   cleanLabels(in.Conditions),
		Allergies:    cleanLabels(in.Allergies),
		TravelPlans:  in.TravelPlans,
		Vaccinations: in.Vaccinations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Update reemplaza el perfil completo (PUT). El pipeline regenera todo
// derivado a partir del perfil vigente, así que no hay merge parcial.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Patient{}, ErrInvalidInput
	}
	if err := validateTravelPlans(in.TravelPlans); err != nil {
		return Patient{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Age = normalizeAge(in.Age)
	current.BirthDate = in.BirthDate
	current.Conditions = cleanLabels(in.Conditions)
	current.Allergies = cleanLabels(in.Allergies)
	current.TravelPlans = in.TravelPlans
	current.Vaccinations = in.Vaccinations
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Patient{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

// normalizeAge: edades negativas (input malformado) se normalizan a 0
// antes de entrar al core.
func normalizeAge(age int) int {
	if age < 0 {
		return 0
	}
	return age
}

// validateTravelPlans: departure <= return cuando hay regreso.
func validateTravelPlans(plans []TravelPlan) error {
	for _, tp := range plans {
		if strings.TrimSpace(tp.Destination) == "" {
			return ErrInvalidInput
		}
		if tp.Departure.IsZero() {
			return ErrInvalidInput
		}
		if tp.Return != nil && tp.Departure.After(*tp.Return) {
			return ErrInvalidInput
		}
	}
	return nil
}

func cleanLabels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
