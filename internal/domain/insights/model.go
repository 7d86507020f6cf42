package insights

// @Enum info, gentle_alert
type Type string

const (
	TypeInfo        Type = "info"
	TypeGentleAlert Type = "gentle_alert"
)

// Insight es un mensaje de solo lectura; lo produce el backend, nunca el cliente.
type Insight struct {
	ID      string `json:"id"`
	PetID   string `json:"petId"`
	Message string `json:"message"`
	Type    Type   `json:"type"`
	Icon    string `json:"icon"`
	Date    string `json:"date"`
}

func (i Insight) RecordID() string    { return i.ID }
func (i Insight) RecordScope() string { return i.PetID }
