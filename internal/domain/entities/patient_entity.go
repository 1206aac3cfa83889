package entities

import (
	"time"
)

// Gender is the self-reported gender captured at registration.
type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

// Patient represents a registered patient in the record store.
// LastActive is the only field that changes after registration.
type Patient struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Age              int       `json:"age"`
	Gender           Gender    `json:"gender"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Location         string    `json:"location"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	RegistrationDate time.Time `json:"registration_date"`
	LastActive       time.Time `json:"last_active"` // truncated to the local calendar day
}

// ActiveOn reports whether the patient's last tracked action fell on the same day as t.
func (p Patient) ActiveOn(t time.Time) bool {
	return SameDay(p.LastActive, t)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
