package training

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Goal]
