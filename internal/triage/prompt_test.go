package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_IsIdempotent(t *testing.T) {
	a := BuildPrompt("fever and cough", "1-3 days", "Moderate", 34, "asthma")
	b := BuildPrompt("fever and cough", "1-3 days", "Moderate", 34, "asthma")

	assert.Equal(t, []byte(a), []byte(b))
}

func TestBuildPrompt_RendersPatientInformation(t *testing.T) {
	p := BuildPrompt("sore throat", "4-7 days", "Mild", 8, "penicillin allergy")

	assert.Contains(t, p, "- Age: 8")
	assert.Contains(t, p, "- Symptoms: sore throat")
	assert.Contains(t, p, "- Duration: 4-7 days")
	assert.Contains(t, p, "- Severity: Mild")
	assert.Contains(t, p, "- Medical History: penicillin allergy")
}

func TestBuildPrompt_MissingHistoryIsExplicit(t *testing.T) {
	for _, history := range []string{"", "   "} {
		p := BuildPrompt("headache", "1-3 days", "Mild", 40, history)
		assert.Contains(t, p, "- Medical History: None provided")
	}
}

func TestBuildPrompt_ContainsAllSixSections(t *testing.T) {
	p := BuildPrompt("rash", "1-2 weeks", "Mild", 22, "")

	sections := []string{
		"1. POTENTIAL CONDITIONS",
		"2. URGENCY LEVEL: Assess as Low/Medium/High/Emergency",
		"3. RECOMMENDATIONS",
		"4. RED FLAGS",
		"5. HOME CARE",
		"6. WHEN TO SEEK HELP",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(p, s)
		assert.Greater(t, idx, last, "section %q missing or out of order", s)
		last = idx
	}
}

func TestDetectEmergencyKeywords(t *testing.T) {
	got := DetectEmergencyKeywords("Severe CHEST PAIN since this morning and I can’t breathe")
	assert.Equal(t, []string{"can't breathe", "chest pain", "severe chest pain"}, got)

	assert.Empty(t, DetectEmergencyKeywords("mild runny nose"))
}
