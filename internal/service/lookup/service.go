package lookup

import (
	"context"
	"fmt"

	"github.com/citymed/frontdesk-api/internal/model"
	"github.com/citymed/frontdesk-api/internal/repository"
)

// Service answers the read-only login flows. All of them query the
// appointments table; none of them authenticate.
type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// FindByPatient matches the stored patient name byte for byte.
func (s *Service) FindByPatient(ctx context.Context, name string) ([]*model.Appointment, error) {
	appointments, err := s.repo.FindByPatientName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	return appointments, nil
}

// FindByPatientFold matches the patient name ignoring case. It coexists
// with FindByPatient because both login endpoints are live; see the login
// handler.
func (s *Service) FindByPatientFold(ctx context.Context, name string) ([]*model.Appointment, error) {
	appointments, err := s.repo.FindByPatientNameFold(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	return appointments, nil
}

// FindByDoctor matches the doctor display name ignoring case. Any string is
// accepted, including names the directory never produced.
func (s *Service) FindByDoctor(ctx context.Context, name string) ([]*model.DoctorAppointment, error) {
	appointments, err := s.repo.FindByDoctorName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	return appointments, nil
}

// ListAll returns every appointment row. The admin flow applies no
// authorization on purpose; any identifier sees the full table.
func (s *Service) ListAll(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
