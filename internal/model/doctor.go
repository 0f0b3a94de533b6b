package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// doctorDirectory maps the booking form's doctor ids to display names. Only
// the display name is ever persisted on an appointment; the raw id never
// reaches the appointments table.
var doctorDirectory = map[int]string{
	1: "Dr. DINESH",
	2: "Dr. ZOYA",
	3: "Dr. NAVYA PUJARI",
	4: "Dr. SHASHI",
	5: "Dr. NAVYA KASTURI",
	6: "Dr. Kumar",
}

// ResolveDoctor returns the display name for a doctor id. An unknown id
// resolves to absent; the caller decides what the miss means.
func ResolveDoctor(id DoctorID) (string, bool) {
	name, ok := doctorDirectory[int(id)]
	return name, ok
}

// DoctorID is a doctor identifier tolerant of both JSON forms: the booking
// page posts it as a string, API clients post it as a number.
type DoctorID int

func (d *DoctorID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*d = DoctorID(n)
	return nil
}

func (d DoctorID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(d))
}
