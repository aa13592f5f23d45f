package alert

import (
	"encoding/json"

	"github.com/vitalapp/api/internal/platform/jsonval"
)

// IDPrefix marks alert identifiers.
const IDPrefix = "ALT"

// DefaultType is used when an alert is created without a type.
const DefaultType = "general"

// Alert is a notice for a patient. The only state change is the move to
// read; repeating it refreshes ReadAt. Priority is kept as sent since
// clients use both labels and numeric levels.
type Alert struct {
	ID        string          `json:"id"`
	PatientID string          `json:"patientId"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Priority  json.RawMessage `json:"priority"`
	IsRead    bool            `json:"isRead"`
	CreatedAt string          `json:"createdAt"`
	ReadAt    string          `json:"readAt,omitempty"`
}

type CreateInput struct {
	PatientID string          `json:"patientId"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Priority  json.RawMessage `json:"priority"`
}

func (in CreateInput) complete() bool {
	return in.PatientID != "" && in.Message != "" && jsonval.Present(in.Priority)
}
