package users

import "pet-wellness/internal/ports/storage"

// Repository indexa cuentas por id; el scope es el email normalizado.
type Repository = storage.Repository[Account]
