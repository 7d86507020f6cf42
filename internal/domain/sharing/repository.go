package sharing

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Link]
