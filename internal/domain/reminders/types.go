package reminders

import (
	"time"

	"vaccination-planner/internal/domain/recommend"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	// StatusFailed lo reporta el transporte externo de notificaciones;
	// el planner nunca lo emite.
	StatusFailed Status = "failed"
)

// Preferences son las preferencias de notificación del usuario.
// Email y sms requieren destino configurado; push no tiene requisito.
type Preferences struct {
	EmailEnabled bool
	EmailAddress string

	SMSEnabled  bool
	PhoneNumber string

	PushEnabled bool

	// Días de anticipación entre recordatorio y cita.
	AdvanceDays int
}

// Reminder es un evento de notificación derivado de una recomendación.
// Status es una vista calculada (fecha de disparo vs. ahora), no un
// estado trackeado.
type Reminder struct {
	ID          string
	VaccineName string

	AppointmentDate time.Time
	FireAt          time.Time

	Channel  Channel
	Status   Status
	Priority recommend.Priority
}
