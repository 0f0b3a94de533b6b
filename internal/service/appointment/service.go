package appointment

import (
	"context"
	"fmt"

	"github.com/citymed/frontdesk-api/internal/model"
	"github.com/citymed/frontdesk-api/internal/repository"
	apperrors "github.com/citymed/frontdesk-api/pkg/errors"
	"github.com/citymed/frontdesk-api/pkg/validator"
)

type Service struct {
	repo     repository.AppointmentRepository
	validate validator.Validator
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateAppointment validates the booking request, resolves the doctor id
// to a display name and persists the appointment. An unknown doctor id is
// not rejected here; the record is submitted with an absent doctor value
// and the store's NOT NULL constraint has the last word.
// TODO: product call pending on whether unknown doctor ids should 400
// instead of surfacing as a store fault.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.BookingConfirmation, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.BadRequest("Missing required fields", err)
	}

	var doctor *string
	if name, ok := model.ResolveDoctor(req.DoctorID); ok {
		doctor = &name
	}

	id, err := s.repo.Create(ctx, &model.AppointmentInsert{
		PatientName: req.Name,
		Contact:     req.Contact,
		Doctor:      doctor,
		Department:  req.Department,
		Date:        req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &model.BookingConfirmation{
		AppointmentID: id,
		Doctor:        doctor,
	}, nil
}
