package dtos

// CreateConsultationRequest records a completed consultation for a registered patient.
// The patient reference is checked by the store; type and details are free text.
type CreateConsultationRequest struct {
	PatientID string `json:"patient_id"`
	Type      string `json:"type"`
	Details   string `json:"details"`
}

// CreatedResponse is returned by endpoints that allocate a new record.
type CreatedResponse struct {
	ID string `json:"id"`
}
