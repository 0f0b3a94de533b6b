package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citymed/frontdesk-api/internal/middleware"
	"github.com/citymed/frontdesk-api/internal/model"
	lookupService "github.com/citymed/frontdesk-api/internal/service/lookup"
)

type fakeAppointmentRepo struct {
	byName     map[string][]*model.Appointment
	byNameFold map[string][]*model.Appointment
	byDoctor   map[string][]*model.DoctorAppointment
	all        []*model.Appointment
	err        error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, ins *model.AppointmentInsert) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) FindByPatientName(ctx context.Context, name string) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byName[name], nil
}

func (f *fakeAppointmentRepo) FindByPatientNameFold(ctx context.Context, name string) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byNameFold[strings.ToLower(name)], nil
}

func (f *fakeAppointmentRepo) FindByDoctorName(ctx context.Context, name string) ([]*model.DoctorAppointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := f.byDoctor[strings.ToLower(name)]
	if rows == nil {
		rows = []*model.DoctorAppointment{}
	}
	return rows, nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func newTestRouter(repo *fakeAppointmentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.ErrorHandler())

	h := NewHandler(lookupService.NewService(repo))
	h.RegisterRoutes(&engine.RouterGroup)
	return engine
}

func post(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func ashaRepo() *fakeAppointmentRepo {
	doctor := "Dr. ZOYA"
	date, _ := model.ParseDateOnly("2024-05-01")
	asha := &model.Appointment{
		ID:          1,
		PatientName: "Asha",
		Doctor:      &doctor,
		Date:        date,
	}
	return &fakeAppointmentRepo{
		byName:     map[string][]*model.Appointment{"Asha": {asha}},
		byNameFold: map[string][]*model.Appointment{"asha": {asha}},
		byDoctor: map[string][]*model.DoctorAppointment{
			"dr. zoya": {{Patient: "Asha", Date: date}},
		},
		all: []*model.Appointment{asha},
	}
}

func TestPatientLoginExactMatch(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	w := post(t, engine, "/login/patient", `{"identifier":"Asha"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message      string              `json:"message"`
		Patient      string              `json:"patient"`
		Appointments []model.Appointment `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful!", resp.Message)
	assert.Equal(t, "Asha", resp.Patient)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2024-05-01", resp.Appointments[0].Date.String())
}

func TestPatientLoginZeroMatchesIsPlainText(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	// The exact-match endpoint misses on a differently cased name and
	// answers with plain text, not JSON.
	w := post(t, engine, "/login/patient", `{"identifier":"ASHA"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "No appointments found for this patient.", w.Body.String())
}

func TestLoginFoldsCase(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	w := post(t, engine, "/login", `{"name":"ASHA"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful!", resp["message"])
	assert.Equal(t, "ASHA", resp["patient"])
}

func TestLoginZeroMatchesIsStructured(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	w := post(t, engine, "/login", `{"name":"Ravi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No patient found", resp["message"])
	assert.NotContains(t, resp, "appointments")
}

func TestDoctorLoginProjection(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	w := post(t, engine, "/login/doctor", `{"identifier":"DR. ZOYA"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Doctor       string                   `json:"doctor"`
		Appointments []map[string]interface{} `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DR. ZOYA", resp.Doctor)
	require.Len(t, resp.Appointments, 1)

	row := resp.Appointments[0]
	assert.Equal(t, "Asha", row["patient"])
	assert.Contains(t, row, "contact")
	assert.Contains(t, row, "date")
	assert.NotContains(t, row, "doctor")
	assert.NotContains(t, row, "department")
}

func TestDoctorLoginUnknownNameEmptyList(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	w := post(t, engine, "/login/doctor", `{"identifier":"Dr. Nobody"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Appointments []interface{} `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestAdminLoginReturnsEverything(t *testing.T) {
	engine := newTestRouter(ashaRepo())

	// Any identifier works; admin login is passwordless by design.
	for _, body := range []string{`{"identifier":"admin"}`, `{"identifier":""}`, `{}`} {
		w := post(t, engine, "/login/admin", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Appointments []interface{} `json:"appointments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Appointments, 1)
	}
}

func TestLoginStoreFault(t *testing.T) {
	repo := ashaRepo()
	repo.err = errors.New("connection reset")
	engine := newTestRouter(repo)

	for _, path := range []string{"/login/patient", "/login/doctor", "/login/admin"} {
		w := post(t, engine, path, `{"identifier":"x"}`)
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.NotContains(t, w.Body.String(), "connection reset")
	}
}
