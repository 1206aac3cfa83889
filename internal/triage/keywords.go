package triage

import (
	"strings"

	"golang.org/x/exp/slices"
)

// EmergencyKeywords are phrases that warrant an immediate red-flag banner regardless of
// what the reasoning service answers.
var EmergencyKeywords = []string{
	"chest pain", "heart attack", "stroke", "difficulty breathing",
	"severe bleeding", "unconscious", "severe headache", "severe abdominal pain",
	"can't breathe", "emergency", "urgent", "severe chest pain",
}

// DetectEmergencyKeywords returns the sorted emergency keywords found in symptoms.
func DetectEmergencyKeywords(symptoms string) []string {
	text := strings.ToLower(symptoms)
	// normalize typographic apostrophes so "can’t breathe" still matches
	text = strings.ReplaceAll(text, "’", "'")

	var found []string
	for _, kw := range EmergencyKeywords {
		if strings.Contains(text, kw) && !slices.Contains(found, kw) {
			found = append(found, kw)
		}
	}
	slices.Sort(found)
	return found
}
