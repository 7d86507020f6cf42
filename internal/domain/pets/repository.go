package pets

import "pet-wellness/internal/ports/storage"

// Repository lista por ownerUserID (RecordScope).
type Repository = storage.Repository[Pet]
