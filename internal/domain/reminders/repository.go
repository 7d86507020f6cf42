package reminders

import "pet-wellness/internal/ports/storage"

type Repository = storage.Repository[Reminder]
