package wellness

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Entry]
