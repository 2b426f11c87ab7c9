package domain

import "time"

type InspectionStatus string

const (
	InspectionStatusScheduled InspectionStatus = "scheduled"
	InspectionStatusDone      InspectionStatus = "done"
	InspectionStatusCancelled InspectionStatus = "cancelled"
)

func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionStatusScheduled, InspectionStatusDone, InspectionStatusCancelled:
		return true
	}
	return false
}

// Inspection representa uma visita técnica agendada pelo RM para um agendamento
type Inspection struct {
	ID          int              `json:"id"`
	Reference   string           `json:"reference"`
	BookingID   int              `json:"booking_id"`
	RMUserID    *int             `json:"rm_user_id"`
	Status      InspectionStatus `json:"status"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Notes       string           `json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type UpdateInspectionRequest struct {
	ID          int               `json:"id"`
	RMUserID    *int              `json:"rm_user_id"`
	Status      *InspectionStatus `json:"status"`
	ScheduledAt *time.Time        `json:"scheduled_at"`
	Notes       *string           `json:"notes"`
}
