package postgres

import (
	"context"
	"fmt"

	"github.com/citymed/frontdesk-api/internal/model"
)

const appointmentColumns = `id, patient_name, contact, doctor, department, date`

func (r *appointmentRepository) Create(ctx context.Context, ins *model.AppointmentInsert) (int64, error) {
	query := `
		INSERT INTO appointments (patient_name, contact, doctor, department, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		ins.PatientName,
		nullIfEmpty(ins.Contact),
		ins.Doctor,
		nullIfEmpty(ins.Department),
		ins.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}
	return id, nil
}

func (r *appointmentRepository) FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE patient_name = $1
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, name); err != nil {
		return nil, fmt.Errorf("failed to find appointments by patient: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientNameFold(ctx context.Context, name string) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE LOWER(patient_name) = LOWER($1)
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, name); err != nil {
		return nil, fmt.Errorf("failed to find appointments by patient: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorName(ctx context.Context, name string) ([]*model.DoctorAppointment, error) {
	query := `
		SELECT patient_name AS patient, contact, date
		FROM appointments
		WHERE LOWER(doctor) = LOWER($1)
	`
	appointments := []*model.DoctorAppointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, name); err != nil {
		return nil, fmt.Errorf("failed to find appointments by doctor: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
