package sharing

import "time"

type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Link da acceso público de solo lectura al perfil de una mascota.
type Link struct {
	Token string `json:"token"`
	PetID string `json:"petId"`

	OwnerUserID string `json:"ownerUserId"` // quien comparte

	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

func (l Link) RecordID() string    { return l.Token }
func (l Link) RecordScope() string { return l.PetID }

// ShareResponse es lo que recibe el cliente: {url}.
type ShareResponse struct {
	URL string `json:"url"`
}
