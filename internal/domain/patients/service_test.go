package patients

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Patient
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Patient{}}
}

func (r *testRepo) Create(ctx context.Context, p Patient) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Patient, error) {
	out := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func TestService_Create_RequiresName(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_NormalizesNegativeAge(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{Name: "Ana", Age: -5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.Age != 0 {
		t.Fatalf("expected negative age normalized to 0, got %d", p.Age)
	}
}

func TestService_Create_RejectsInvertedTravelDates(t *testing.T) {
	svc := NewService(newTestRepo())

	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, -5)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana",
		Age:  30,
		TravelPlans: []TravelPlan{
			{Destination: "Sub-Saharan Africa", Departure: dep, Return: &ret},
		},
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for departure after return, got %v", err)
	}
}

func TestService_Create_AllowsOpenEndedTrip(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana",
		Age:  30,
		TravelPlans: []TravelPlan{
			{Destination: "Southeast Asia", Departure: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)},
		},
	})
	if err != nil {
		t.Fatalf("open-ended trip must be valid, got %v", err)
	}
}

func TestService_Update_ReplacesWholeProfile(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)

	svc.now = func() time.Time { return now1 }
	created, err := svc.Create(context.Background(), CreateInput{
		Name:       "Ana",
		Age:        30,
		Conditions: []string{"Asthma"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	updated, err := svc.Update(context.Background(), created.ID, CreateInput{
		Name: "Ana",
		Age:  31,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Age != 31 {
		t.Errorf("expected age replaced, got %d", updated.Age)
	}
	if len(updated.Conditions) != 0 {
		t.Errorf("PUT replaces the whole profile; conditions must be gone, got %v", updated.Conditions)
	}
	if updated.UpdatedAt != now2 || updated.CreatedAt != now1 {
		t.Errorf("expected CreatedAt kept and UpdatedAt bumped")
	}
}

func TestService_Create_TrimsLabels(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), CreateInput{
		Name:       "  Ana  ",
		Age:        30,
		Conditions: []string{" Diabetes ", "", "  "},
		Allergies:  []string{" Egg Allergy "},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if p.Name != "Ana" {
		t.Errorf("expected trimmed name, got %q", p.Name)
	}
	if len(p.Conditions) != 1 || p.Conditions[0] != "Diabetes" {
		t.Errorf("expected cleaned conditions, got %v", p.Conditions)
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "Egg Allergy" {
		t.Errorf("expected cleaned allergies, got %v", p.Allergies)
	}
}
