package mappers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"clinic-triage-service/internal/domain/entities"
)

// PatientIdentifierSystem namespaces front-desk patient ids inside FHIR identifiers.
const PatientIdentifierSystem = "urn:clinic-triage:patient-id"

// FHIRHumanName represents a FHIR HumanName data type.
type FHIRHumanName struct {
	Use    string   `json:"use,omitempty"`
	Text   string   `json:"text,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
}

// FHIRIdentifier represents a FHIR Identifier data type.
type FHIRIdentifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

// FHIRContactPoint represents a FHIR ContactPoint data type.
type FHIRContactPoint struct {
	System string `json:"system"` // phone | email
	Value  string `json:"value"`
}

// FHIRAddress represents the subset of a FHIR Address we know about.
type FHIRAddress struct {
	Text string `json:"text,omitempty"`
	City string `json:"city,omitempty"`
}

// FHIRMeta carries resource metadata.
type FHIRMeta struct {
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// FHIRPatientGender represents the administrative gender of a patient.
// FHIR values: male | female | other | unknown
type FHIRPatientGender string

const (
	GenderMale    FHIRPatientGender = "male"
	GenderFemale  FHIRPatientGender = "female"
	GenderOther   FHIRPatientGender = "other"
	GenderUnknown FHIRPatientGender = "unknown"
)

// FHIRPatientResource represents a simplified FHIR Patient resource.
type FHIRPatientResource struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id,omitempty"`
	Meta         *FHIRMeta          `json:"meta,omitempty"`
	Identifier   []FHIRIdentifier   `json:"identifier,omitempty"`
	Active       bool               `json:"active"`
	Name         []FHIRHumanName    `json:"name,omitempty"`
	Telecom      []FHIRContactPoint `json:"telecom,omitempty"`
	Gender       FHIRPatientGender  `json:"gender,omitempty"`
	Address      []FHIRAddress      `json:"address,omitempty"`
}

// MapGender converts a registration gender to its FHIR administrative gender.
func MapGender(g entities.Gender) FHIRPatientGender {
	switch g {
	case entities.GenderMale:
		return GenderMale
	case entities.GenderFemale:
		return GenderFemale
	case entities.GenderOther:
		return GenderOther
	default:
		return GenderUnknown
	}
}

// splitName treats the last word of a full name as the family name.
func splitName(fullName string) FHIRHumanName {
	name := FHIRHumanName{Use: "official", Text: fullName}
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
	case 1:
		name.Given = parts
	default:
		name.Family = parts[len(parts)-1]
		name.Given = parts[:len(parts)-1]
	}
	return name
}

// MapPatientToFHIR converts a registered patient to a FHIR Patient resource.
func MapPatientToFHIR(patient entities.Patient) (json.RawMessage, error) {
	if strings.TrimSpace(patient.FullName) == "" {
		return nil, fmt.Errorf("patient name is required for FHIR mapping")
	}
	if patient.ID == "" {
		return nil, fmt.Errorf("patient id is required for FHIR mapping")
	}

	fhirPatient := FHIRPatientResource{
		ResourceType: "Patient",
		ID:           patient.ID,
		Identifier:   []FHIRIdentifier{{System: PatientIdentifierSystem, Value: patient.ID}},
		Active:       true,
		Name:         []FHIRHumanName{splitName(strings.TrimSpace(patient.FullName))},
		Gender:       MapGender(patient.Gender),
	}
	if !patient.RegistrationDate.IsZero() {
		fhirPatient.Meta = &FHIRMeta{LastUpdated: patient.RegistrationDate.UTC().Format(time.RFC3339)}
	}
	if patient.Email != "" {
		fhirPatient.Telecom = append(fhirPatient.Telecom, FHIRContactPoint{System: "email", Value: patient.Email})
	}
	if patient.Phone != "" {
		fhirPatient.Telecom = append(fhirPatient.Telecom, FHIRContactPoint{System: "phone", Value: patient.Phone})
	}
	if patient.Location != "" {
		fhirPatient.Address = []FHIRAddress{{Text: patient.Location, City: patient.Location}}
	}

	rawJSON, err := json.MarshalIndent(fhirPatient, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR patient resource to JSON: %w", err)
	}
	return rawJSON, nil
}
