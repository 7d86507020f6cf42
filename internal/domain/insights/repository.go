package insights

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Insight]
