package model

import "time"

// QueueEntry is a row from the queue table. Entries are write-only in the
// exposed API; nothing reads them back.
type QueueEntry struct {
	ID         int64     `db:"id" json:"id"`
	Name       *string   `db:"name" json:"name"`
	Contact    *string   `db:"contact" json:"contact"`
	Department *string   `db:"department" json:"department"`
	DoctorID   *int      `db:"doctor_id" json:"doctor_id"`
	Token      int       `db:"token" json:"token"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// RegisterQueueRequest carries the walk-in form fields. Every field is
// optional; an empty registration is accepted.
type RegisterQueueRequest struct {
	Name       string   `json:"name"`
	Contact    string   `json:"contact"`
	Department string   `json:"department"`
	DoctorID   DoctorID `json:"doctor_id"`
}

// QueueInsert is the record the repository persists, keeping the raw doctor
// id rather than a resolved name.
type QueueInsert struct {
	Name       string
	Contact    string
	Department string
	DoctorID   int
	Token      int
}

// QueueTicket is what the front desk hands back: the waiting-number token
// plus a synthesized position and wait estimate in minutes.
type QueueTicket struct {
	Token    int `json:"token"`
	Position int `json:"position"`
	ETA      int `json:"eta"`
}
