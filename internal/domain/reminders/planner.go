package reminders

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"vaccination-planner/internal/domain/recommend"
)

// DefaultAdvanceDays se usa cuando las preferencias no traen un valor.
const DefaultAdvanceDays = 3

// Plan deriva los recordatorios de las fechas objetivo de las
// recomendaciones. Por canal habilitado: uno base en due-advanceDays
// y, solo para prioridad alta, un recordatorio final en due-1d.
// Salida ordenada por fecha de disparo ascendente.
func Plan(recs []recommend.Recommendation, prefs Preferences, now time.Time) []Reminder {
	channels := enabledChannels(prefs)
	if len(channels) == 0 {
		return []Reminder{}
	}

	advance := prefs.AdvanceDays
	if advance <= 0 {
		advance = DefaultAdvanceDays
	}

	out := make([]Reminder, 0, len(recs)*len(channels))

	for _, rec := range recs {
		for _, ch := range channels {
			out = append(out, newReminder(rec, ch, rec.DueDate.AddDate(0, 0, -advance), now))

			// Recordatorio final solo para prioridad alta.
			if rec.Priority == recommend.PriorityHigh {
				out = append(out, newReminder(rec, ch, rec.DueDate.AddDate(0, 0, -1), now))
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})

	return out
}

func newReminder(rec recommend.Recommendation, ch Channel, fireAt time.Time, now time.Time) Reminder {
	status := StatusScheduled
	if fireAt.Before(now) {
		status = StatusSent
	}

	return Reminder{
		ID:              uuid.NewString(),
		VaccineName:     rec.VaccineName,
		AppointmentDate: rec.DueDate,
		FireAt:          fireAt,
		Channel:         ch,
		Status:          status,
		Priority:        rec.Priority,
	}
}

func enabledChannels(prefs Preferences) []Channel {
	channels := make([]Channel, 0, 3)
	if prefs.EmailEnabled && strings.TrimSpace(prefs.EmailAddress) != "" {
		channels = append(channels, ChannelEmail)
	}
	if prefs.SMSEnabled && strings.TrimSpace(prefs.PhoneNumber) != "" {
		channels = append(channels, ChannelSMS)
	}
	if prefs.PushEnabled {
		channels = append(channels, ChannelPush)
	}
	return channels
}
