package entities

import "time"

// ConsultationStatus is the lifecycle state of a consultation. Only Completed is used.
type ConsultationStatus string

const ConsultationCompleted ConsultationStatus = "Completed"

// Consultation is an immutable record of a completed patient consultation.
type Consultation struct {
	ID        string             `json:"id"`
	PatientID string             `json:"patient_id"`
	Type      string             `json:"type"`
	Details   string             `json:"details"`
	Timestamp time.Time          `json:"timestamp"`
	Status    ConsultationStatus `json:"status"`
}
