package dtos

import (
	"strings"

	"clinic-triage-service/internal/domain/entities"
)

// TriageRequest is the symptom checker payload. PatientID is optional; guest requests
// are analyzed but not stored.
type TriageRequest struct {
	PatientID      string `json:"patient_id,omitempty"`
	Symptoms       string `json:"symptoms" validate:"required"`
	Duration       string `json:"duration" validate:"required,oneof='Less than 24 hours' '1-3 days' '4-7 days' '1-2 weeks' 'More than 2 weeks'"`
	Severity       string `json:"severity" validate:"required,oneof='Mild' 'Moderate' 'Severe'"`
	Age            int    `json:"age" validate:"required,min=1,max=120"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

// Validate rejects incomplete symptom checker submissions before any external call is made.
func (r TriageRequest) Validate() error {
	r.Symptoms = strings.TrimSpace(r.Symptoms)
	return validateStruct(r)
}

// TriageResponse is what the symptom checker renders. AnalysisID is empty for guests.
type TriageResponse struct {
	AnalysisID string                `json:"analysis_id,omitempty"`
	Result     entities.TriageResult `json:"result"`
}
