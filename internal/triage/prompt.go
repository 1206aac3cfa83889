// Package triage renders symptom triage prompts and calls the external reasoning service.
package triage

import (
	"fmt"
	"strings"
)

// SystemInstruction is sent as the system role message on every triage call.
const SystemInstruction = "You are a medical AI assistant that provides accurate, cautious symptom analysis. " +
	"Always emphasize the importance of consulting healthcare professionals for proper diagnosis and treatment."

// NoHistoryMarker stands in for an empty medical history so the omission is explicit.
const NoHistoryMarker = "None provided"

const promptTemplate = `As a medical AI assistant, provide a comprehensive analysis of these symptoms:

PATIENT INFORMATION:
- Age: %d
- Symptoms: %s
- Duration: %s
- Severity: %s
- Medical History: %s

Please provide a structured assessment with:
1. POTENTIAL CONDITIONS: List 2-3 most likely medical conditions with probability estimates
2. URGENCY LEVEL: Assess as Low/Medium/High/Emergency
3. RECOMMENDATIONS: Specific medical advice and next steps
4. RED FLAGS: Symptoms that require immediate medical attention
5. HOME CARE: Self-care recommendations if appropriate
6. WHEN TO SEEK HELP: Clear guidance on when to consult a doctor

Be medically accurate, cautious, and always emphasize consulting healthcare professionals.
Provide percentages for likelihood where appropriate.`

// BuildPrompt renders the user message for a triage call. It has no side effects and
// returns identical output for identical input.
func BuildPrompt(symptoms, duration, severity string, age int, medicalHistory string) string {
	history := strings.TrimSpace(medicalHistory)
	if history == "" {
		history = NoHistoryMarker
	}
	return fmt.Sprintf(promptTemplate,
		age,
		strings.TrimSpace(symptoms),
		strings.TrimSpace(duration),
		strings.TrimSpace(severity),
		history,
	)
}
