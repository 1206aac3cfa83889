package dtos

import (
	"strings"

	"clinic-triage-service/internal/domain/entities"
)

// CreatePatientRequest defines the registration payload for a new patient.
type CreatePatientRequest struct {
	FullName         string `json:"full_name" validate:"required"`
	Age              int    `json:"age" validate:"required,min=1,max=120"`
	Gender           string `json:"gender" validate:"required,oneof='Male' 'Female' 'Other' 'Prefer not to say'"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone"`
	Location         string `json:"location" validate:"required"`
	EmergencyContact string `json:"emergency_contact"`
	MedicalHistory   string `json:"medical_history"`
}

// Validate checks the required registration fields and returns the first violation found.
// Surrounding whitespace is ignored.
func (r CreatePatientRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Gender = string(NormalizeGender(r.Gender))
	r.Email = strings.TrimSpace(r.Email)
	r.Location = strings.TrimSpace(r.Location)
	return validateStruct(r)
}

// NormalizeGender trims a form value and maps the "PreferNotToSay" alias onto its
// display value. Membership is checked by Validate.
func NormalizeGender(value string) entities.Gender {
	g := entities.Gender(strings.TrimSpace(value))
	if g == "PreferNotToSay" {
		return entities.GenderPreferNotToSay
	}
	return g
}
