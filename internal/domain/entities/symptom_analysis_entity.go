package entities

import "time"

// TriageResult is the normalized outcome of one triage call. Error is empty on success;
// on failure AnalysisText carries a user-safe fallback message instead of a diagnosis.
type TriageResult struct {
	AnalysisText      string    `json:"analysis"`
	Timestamp         time.Time `json:"timestamp"`
	ModelLabel        string    `json:"ai_model,omitempty"`
	ConfidenceLabel   string    `json:"confidence,omitempty"`
	EmergencyKeywords []string  `json:"emergency_keywords,omitempty"`
	Error             string    `json:"error,omitempty"`
}

// Failed reports whether the triage call did not produce an analysis.
func (r TriageResult) Failed() bool {
	return r.Error != ""
}

// SymptomAnalysis is an immutable triage result bound to a registered patient.
type SymptomAnalysis struct {
	ID        string       `json:"id"`
	PatientID string       `json:"patient_id"`
	Symptoms  string       `json:"symptoms"`
	Result    TriageResult `json:"result"`
	Timestamp time.Time    `json:"timestamp"`
}
