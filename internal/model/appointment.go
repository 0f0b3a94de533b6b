package model

// Appointment is a row from the appointments table as it is returned to
// callers: id, patient_name, contact, doctor, department, date.
type Appointment struct {
	ID          int64    `db:"id" json:"id"`
	PatientName string   `db:"patient_name" json:"patient_name"`
	Contact     *string  `db:"contact" json:"contact"`
	Doctor      *string  `db:"doctor" json:"doctor"`
	Department  *string  `db:"department" json:"department"`
	Date        DateOnly `db:"date" json:"date"`
}

// DoctorAppointment is the projection handed to doctors: the patient name is
// aliased to "patient" and the doctor and department columns are withheld.
type DoctorAppointment struct {
	Patient string   `db:"patient" json:"patient"`
	Contact *string  `db:"contact" json:"contact"`
	Date    DateOnly `db:"date" json:"date"`
}

// CreateAppointmentRequest carries the booking form fields. Contact is the
// only optional field; the date travels as an uninterpreted string and the
// store parses it.
type CreateAppointmentRequest struct {
	Name       string   `json:"name" validate:"required"`
	Contact    string   `json:"contact"`
	Department string   `json:"department" validate:"required"`
	DoctorID   DoctorID `json:"doctor_id" validate:"required"`
	Date       string   `json:"date" validate:"required"`
}

// AppointmentInsert is the record the repository persists. Doctor is nil
// when the id did not resolve; the insert still proceeds and the store's
// NOT NULL constraint decides.
type AppointmentInsert struct {
	PatientName string
	Contact     string
	Doctor      *string
	Department  string
	Date        string
}

// BookingConfirmation is what appointment creation returns to the caller.
type BookingConfirmation struct {
	AppointmentID int64
	Doctor        *string
}
