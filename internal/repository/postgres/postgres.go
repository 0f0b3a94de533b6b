package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/citymed/frontdesk-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

type queueRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewQueueRepository(db *sqlx.DB) repository.QueueRepository {
	return &queueRepository{db: db}
}

// nullIfEmpty maps an unset optional form field to NULL instead of the
// empty string, so reads report absent values as null.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
