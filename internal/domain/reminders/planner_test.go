package reminders

import (
	"testing"
	"time"

	"vaccination-planner/internal/domain/recommend"
)

var testNow = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

func TestPlan_ChannelsRequireDestination(t *testing.T) {
	rec := recommend.Recommendation{
		VaccineName: "Influenza (Flu)",
		Priority:    recommend.PriorityMedium,
		DueDate:     testNow.AddDate(0, 0, 10),
	}

	// Email habilitado pero sin dirección: no emite.
	out := Plan([]recommend.Recommendation{rec}, Preferences{EmailEnabled: true}, testNow)
	if len(out) != 0 {
		t.Fatalf("email without address must not emit, got %d", len(out))
	}

	// SMS habilitado sin número: no emite. Push no requiere nada.
	out = Plan([]recommend.Recommendation{rec}, Preferences{SMSEnabled: true, PushEnabled: true}, testNow)
	if len(out) != 1 {
		t.Fatalf("expected push-only reminder, got %d", len(out))
	}
	if out[0].Channel != ChannelPush {
		t.Fatalf("expected push channel, got %s", out[0].Channel)
	}
}

func TestPlan_BaseReminderPerEnabledChannel(t *testing.T) {
	rec := recommend.Recommendation{
		VaccineName: "Tdap",
		Priority:    recommend.PriorityMedium,
		DueDate:     testNow.AddDate(0, 0, 10),
	}

	prefs := Preferences{
		EmailEnabled: true,
		EmailAddress: "ana@example.com",
		SMSEnabled:   true,
		PhoneNumber:  "+5491122334455",
		PushEnabled:  true,
		AdvanceDays:  5,
	}

	out := Plan([]recommend.Recommendation{rec}, prefs, testNow)

	if len(out) != 3 {
		t.Fatalf("expected one reminder per channel, got %d", len(out))
	}

	want := rec.DueDate.AddDate(0, 0, -5)
	for _, rem := range out {
		if !rem.FireAt.Equal(want) {
			t.Errorf("expected fire at due-5d (%v), got %v", want, rem.FireAt)
		}
		if rem.ID == "" {
			t.Errorf("expected synthetic id")
		}
		if rem.Priority != recommend.PriorityMedium {
			t.Errorf("priority must be inherited, got %s", rem.Priority)
		}
	}
}

func TestPlan_FinalReminderOnlyForHighPriority(t *testing.T) {
	recs := []recommend.Recommendation{
		{VaccineName: "Yellow Fever", Priority: recommend.PriorityHigh, DueDate: testNow.AddDate(0, 0, 10)},
		{VaccineName: "Influenza (Flu)", Priority: recommend.PriorityMedium, DueDate: testNow.AddDate(0, 0, 10)},
	}

	out := Plan(recs, Preferences{PushEnabled: true, AdvanceDays: 3}, testNow)

	// 2 base + 1 final (solo la high)
	if len(out) != 3 {
		t.Fatalf("expected 3 reminders, got %d", len(out))
	}

	finals := 0
	for _, rem := range out {
		if rem.FireAt.Equal(rem.AppointmentDate.AddDate(0, 0, -1)) {
			finals++
			if rem.VaccineName != "Yellow Fever" {
				t.Errorf("final reminder only for high priority, got %s", rem.VaccineName)
			}
		}
	}
	if finals != 1 {
		t.Fatalf("expected exactly one final reminder, got %d", finals)
	}
}

func TestPlan_StatusDerivedFromClock(t *testing.T) {
	recs := []recommend.Recommendation{
		// Fire date pasado → sent
		{VaccineName: "Tdap", Priority: recommend.PriorityMedium, DueDate: testNow.AddDate(0, 0, 1)},
		// Fire date futuro → scheduled
		{VaccineName: "Hepatitis B", Priority: recommend.PriorityMedium, DueDate: testNow.AddDate(0, 0, 30)},
	}

	out := Plan(recs, Preferences{PushEnabled: true, AdvanceDays: 3}, testNow)
	if len(out) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(out))
	}

	for _, rem := range out {
		switch rem.VaccineName {
		case "Tdap":
			if rem.Status != StatusSent {
				t.Errorf("past fire date must read as sent, got %s", rem.Status)
			}
		case "Hepatitis B":
			if rem.Status != StatusScheduled {
				t.Errorf("future fire date must read as scheduled, got %s", rem.Status)
			}
		}
	}
}

func TestPlan_SortedByFireDate(t *testing.T) {
	recs := []recommend.Recommendation{
		{VaccineName: "A", Priority: recommend.PriorityHigh, DueDate: testNow.AddDate(0, 0, 30)},
		{VaccineName: "B", Priority: recommend.PriorityMedium, DueDate: testNow.AddDate(0, 0, 5)},
		{VaccineName: "C", Priority: recommend.PriorityHigh, DueDate: testNow.AddDate(0, 0, 15)},
	}

	out := Plan(recs, Preferences{PushEnabled: true, AdvanceDays: 3}, testNow)

	for i := 1; i < len(out); i++ {
		if out[i].FireAt.Before(out[i-1].FireAt) {
			t.Fatalf("reminders must be sorted ascending by fire date")
		}
	}
}

func TestPlan_DefaultAdvanceDays(t *testing.T) {
	rec := recommend.Recommendation{
		VaccineName: "Tdap",
		Priority:    recommend.PriorityMedium,
		DueDate:     testNow.AddDate(0, 0, 10),
	}

	out := Plan([]recommend.Recommendation{rec}, Preferences{PushEnabled: true}, testNow)
	if len(out) != 1 {
		t.Fatalf("expected one reminder, got %d", len(out))
	}
	if want := rec.DueDate.AddDate(0, 0, -DefaultAdvanceDays); !out[0].FireAt.Equal(want) {
		t.Fatalf("expected default advance of %d days", DefaultAdvanceDays)
	}
}
