package repository

import (
	"context"

	"github.com/citymed/frontdesk-api/internal/model"
)

// AppointmentRepository is the appointments table access contract. The two
// patient finders differ on purpose: one matches byte for byte, the other
// folds case. Both login endpoints are live, so both stay.
type AppointmentRepository interface {
	Create(ctx context.Context, ins *model.AppointmentInsert) (int64, error)
	FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error)
	FindByPatientNameFold(ctx context.Context, name string) ([]*model.Appointment, error)
	FindByDoctorName(ctx context.Context, name string) ([]*model.DoctorAppointment, error)
	List(ctx context.Context) ([]*model.Appointment, error)
}

// QueueRepository persists walk-in registrations. The table is never read
// back through the API.
type QueueRepository interface {
	Create(ctx context.Context, ins *model.QueueInsert) (int64, error)
}
