package auth

import "time"

// Claims representa la información extraída del token de sesión.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}
