package patient

// IDPrefix marks patient identifiers.
const IDPrefix = "PAT"

// Patient is a registered patient. Patients are never updated or deleted.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// CreateInput is the body accepted by POST /api/patients.
type CreateInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate"`
}

func (in CreateInput) complete() bool {
	return in.Name != "" && in.Email != "" && in.Phone != ""
}
