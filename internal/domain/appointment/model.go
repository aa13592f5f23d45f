package appointment

import "encoding/json"

// IDPrefix marks appointment identifiers.
const IDPrefix = "APT"

// StatusScheduled is assigned to every new appointment. Any other status
// string is accepted on patch; there is no transition table.
const StatusScheduled = "scheduled"

type Appointment struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt,omitempty"`

	// Extra holds patched keys outside the fields above, and known keys whose
	// patched value was not a string. It is written inline and wins over the
	// typed field of the same name. Never mutate it in place: Patch replaces
	// the map so copies handed out earlier stay unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// appointmentFields is Appointment without its methods, for default encoding.
type appointmentFields Appointment

func (a Appointment) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(appointmentFields(a))
	if err != nil || len(a.Extra) == 0 {
		return base, err
	}
	merged := make(map[string]json.RawMessage, len(a.Extra)+9)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// CreateInput is the body accepted by POST /api/appointments. PatientID is
// not checked against the patient collection.
type CreateInput struct {
	PatientID  string `json:"patientId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
}

func (in CreateInput) complete() bool {
	return in.PatientID != "" && in.DoctorName != "" && in.Date != "" && in.Time != ""
}

// Patch is a shallow merge: every key replaces the field of the same name,
// identifiers included, and unknown keys are added to the record.
type Patch map[string]json.RawMessage

// field returns the typed field stored under the JSON key, or nil.
func (a *Appointment) field(key string) *string {
	switch key {
	case "id":
		return &a.ID
	case "patientId":
		return &a.PatientID
	case "doctorName":
		return &a.DoctorName
	case "date":
		return &a.Date
	case "time":
		return &a.Time
	case "reason":
		return &a.Reason
	case "status":
		return &a.Status
	case "createdAt":
		return &a.CreatedAt
	case "updatedAt":
		return &a.UpdatedAt
	}
	return nil
}

func (p Patch) applyTo(a *Appointment) {
	if len(p) == 0 {
		return
	}
	extra := make(map[string]json.RawMessage, len(a.Extra)+len(p))
	for k, v := range a.Extra {
		extra[k] = v
	}
	for k, raw := range p {
		f := a.field(k)
		if f == nil {
			extra[k] = raw
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*f = s
			delete(extra, k)
			continue
		}
		*f = ""
		extra[k] = raw
	}
	if len(extra) == 0 {
		extra = nil
	}
	a.Extra = extra
}

// stamp sets updatedAt after a merge, overriding any value sent by the caller.
func (a *Appointment) stamp(ts string) {
	a.UpdatedAt = ts
	if _, ok := a.Extra["updatedAt"]; ok {
		extra := make(map[string]json.RawMessage, len(a.Extra))
		for k, v := range a.Extra {
			if k != "updatedAt" {
				extra[k] = v
			}
		}
		if len(extra) == 0 {
			extra = nil
		}
		a.Extra = extra
	}
}
