package mappers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"clinic-triage-service/internal/domain/entities"
)

func TestMapPatientToFHIR_Success(t *testing.T) {
	registered := time.Date(2024, time.January, 15, 8, 30, 0, 0, time.UTC)
	patient := entities.Patient{
		ID:               "P1000",
		FullName:         "Jane Mary Doe",
		Age:              30,
		Gender:           entities.GenderFemale,
		Email:            "j@x.com",
		Phone:            "+63 912 345 6789",
		Location:         "Manila",
		RegistrationDate: registered,
	}

	rawFHIRJson, err := MapPatientToFHIR(patient)
	if err != nil {
		t.Fatalf("MapPatientToFHIR returned an unexpected error: %v", err)
	}

	var fhirPatient FHIRPatientResource
	if err := json.Unmarshal(rawFHIRJson, &fhirPatient); err != nil {
		t.Fatalf("Error unmarshalling rawFHIRJson: %v. JSON: %s", err, string(rawFHIRJson))
	}

	if fhirPatient.ResourceType != "Patient" {
		t.Errorf("Expected ResourceType 'Patient', got '%s'", fhirPatient.ResourceType)
	}
	if fhirPatient.ID != "P1000" {
		t.Errorf("Expected FHIR ID 'P1000', got '%s'", fhirPatient.ID)
	}
	if len(fhirPatient.Identifier) != 1 || fhirPatient.Identifier[0].System != PatientIdentifierSystem {
		t.Errorf("Expected one identifier in %s, got %+v", PatientIdentifierSystem, fhirPatient.Identifier)
	}
	if fhirPatient.Gender != GenderFemale {
		t.Errorf("Expected Gender 'female', got '%s'", fhirPatient.Gender)
	}
	if fhirPatient.Meta == nil || fhirPatient.Meta.LastUpdated != "2024-01-15T08:30:00Z" {
		t.Errorf("Expected meta.lastUpdated '2024-01-15T08:30:00Z', got %+v", fhirPatient.Meta)
	}

	if len(fhirPatient.Name) != 1 {
		t.Fatalf("Expected 1 name entry, got %d", len(fhirPatient.Name))
	}
	name := fhirPatient.Name[0]
	if name.Family != "Doe" {
		t.Errorf("Expected Family 'Doe', got '%s'", name.Family)
	}
	if strings.Join(name.Given, " ") != "Jane Mary" {
		t.Errorf("Expected Given 'Jane Mary', got '%v'", name.Given)
	}
	if name.Use != "official" {
		t.Errorf("Expected Name.Use 'official', got '%s'", name.Use)
	}

	if len(fhirPatient.Telecom) != 2 {
		t.Fatalf("Expected email and phone telecom entries, got %+v", fhirPatient.Telecom)
	}
	if fhirPatient.Telecom[0].System != "email" || fhirPatient.Telecom[1].System != "phone" {
		t.Errorf("Unexpected telecom order: %+v", fhirPatient.Telecom)
	}
	if len(fhirPatient.Address) != 1 || fhirPatient.Address[0].City != "Manila" {
		t.Errorf("Expected address city 'Manila', got %+v", fhirPatient.Address)
	}
}

func TestMapPatientToFHIR_NameRequired(t *testing.T) {
	patient := entities.Patient{ID: "P1000", FullName: " "}

	_, err := MapPatientToFHIR(patient)
	if err == nil {
		t.Fatalf("MapPatientToFHIR expected an error for missing name, but got nil")
	}
	if !strings.Contains(err.Error(), "patient name is required") {
		t.Errorf("Expected error message to contain 'patient name is required', got: %v", err)
	}
}

func TestMapGender(t *testing.T) {
	cases := map[entities.Gender]FHIRPatientGender{
		entities.GenderMale:           GenderMale,
		entities.GenderFemale:         GenderFemale,
		entities.GenderOther:          GenderOther,
		entities.GenderPreferNotToSay: GenderUnknown,
	}
	for in, want := range cases {
		if got := MapGender(in); got != want {
			t.Errorf("MapGender(%q) = %q, want %q", in, got, want)
		}
	}
}
