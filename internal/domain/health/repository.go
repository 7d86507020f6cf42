package health

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Record]
