package dtos

import (
	"encoding/json"
	"strings"
)

// Export states reported by TransferProgress.Status.
const (
	ExportPending   = "PENDING"
	ExportCompleted = "COMPLETED"
	ExportFailed    = "FAILED"
)

// InitiateTransferRequest starts a FHIR export of a registered patient's record.
type InitiateTransferRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	IsEmergency bool   `json:"is_emergency"`
}

// Validate requires a patient reference.
func (r InitiateTransferRequest) Validate() error {
	r.PatientID = strings.TrimSpace(r.PatientID)
	return validateStruct(r)
}

// TransferProgress represents common fields for transfer status responses.
type TransferProgress struct {
	TransferID string `json:"transfer_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

// ExportStatusResponse carries the FHIR resource once the export has completed.
type ExportStatusResponse struct {
	TransferProgress
	PatientID  string          `json:"patient_id,omitempty"`
	FHIRBundle json.RawMessage `json:"fhir_bundle,omitempty"`
}
