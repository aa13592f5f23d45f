package result

import (
	"encoding/json"

	"github.com/vitalapp/api/internal/platform/jsonval"
)

// IDPrefix marks result identifiers.
const IDPrefix = "RES"

// Result is a diagnostic test result. Values is stored verbatim; units and
// ranges are not interpreted.
type Result struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patientId"`
	TestType       string          `json:"testType"`
	Values         json.RawMessage `json:"values"`
	Interpretation string          `json:"interpretation,omitempty"`
	DoctorNotes    string          `json:"doctorNotes,omitempty"`
	Date           string          `json:"date"`
}

type CreateInput struct {
	PatientID      string          `json:"patientId"`
	TestType       string          `json:"testType"`
	Values         json.RawMessage `json:"values"`
	Interpretation string          `json:"interpretation"`
	DoctorNotes    string          `json:"doctorNotes"`
}

func (in CreateInput) complete() bool {
	return in.PatientID != "" && in.TestType != "" && jsonval.Present(in.Values)
}
