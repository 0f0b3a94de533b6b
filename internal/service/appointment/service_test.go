package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymed/frontdesk-api/internal/model"
	apperrors "github.com/citymed/frontdesk-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	inserts   []*model.AppointmentInsert
	nextID    int64
	createErr error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, ins *model.AppointmentInsert) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.inserts = append(f.inserts, ins)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAppointmentRepo) FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientNameFold(ctx context.Context, name string) ([]*model.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDoctorName(ctx context.Context, name string) ([]*model.DoctorAppointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	return nil, nil
}

func validRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		Name:       "Asha",
		Contact:    "555",
		Department: "Cardiology",
		DoctorID:   3,
		Date:       "2024-05-01",
	}
}

func TestCreateAppointmentResolvesDoctor(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)

	confirmation, err := svc.CreateAppointment(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, confirmation.Doctor)
	assert.Equal(t, "Dr. NAVYA PUJARI", *confirmation.Doctor)
	assert.Equal(t, int64(1), confirmation.AppointmentID)

	require.Len(t, repo.inserts, 1)
	ins := repo.inserts[0]
	assert.Equal(t, "Asha", ins.PatientName)
	require.NotNil(t, ins.Doctor)
	assert.Equal(t, "Dr. NAVYA PUJARI", *ins.Doctor)
	assert.Equal(t, "2024-05-01", ins.Date)
}

func TestCreateAppointmentRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateAppointmentRequest)
	}{
		{"missing name", func(r *model.CreateAppointmentRequest) { r.Name = "" }},
		{"missing department", func(r *model.CreateAppointmentRequest) { r.Department = "" }},
		{"missing doctor_id", func(r *model.CreateAppointmentRequest) { r.DoctorID = 0 }},
		{"missing date", func(r *model.CreateAppointmentRequest) { r.Date = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			svc := NewService(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.CreateAppointment(context.Background(), req)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
			assert.Equal(t, "Missing required fields", appErr.Message)

			// Validation failures must not write.
			assert.Empty(t, repo.inserts)
		})
	}
}

func TestCreateAppointmentOptionalContact(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.Contact = ""

	_, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.inserts, 1)
}

func TestCreateAppointmentUnknownDoctorStillWrites(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.DoctorID = 99

	confirmation, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	// The id does not resolve; the record is submitted with an absent
	// doctor value rather than being rejected up front.
	assert.Nil(t, confirmation.Doctor)
	require.Len(t, repo.inserts, 1)
	assert.Nil(t, repo.inserts[0].Doctor)
}

func TestCreateAppointmentStoreFault(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeAppointmentRepo{createErr: storeErr}
	svc := NewService(repo)

	_, err := svc.CreateAppointment(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	var appErr *apperrors.AppError
	assert.False(t, errors.As(err, &appErr), "store faults must not be translated")
}
