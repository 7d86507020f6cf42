package petstore

import (
	"slices"

	"pet-wellness/internal/ports/storage"
)

func clone[T any](items []T) []T {
	return append([]T(nil), items...)
}

// ofPet descarta lo que no pertenece a petID; nunca devuelve nil.
func ofPet[T storage.Record](items []T, petID string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordScope() == petID {
			out = append(out, it)
		}
	}
	return out
}

// replaceByID reemplaza en el lugar; si el id no está la lista no cambia.
func replaceByID[T storage.Record](items []T, v T) []T {
	i := slices.IndexFunc(items, func(x T) bool { return x.RecordID() == v.RecordID() })
	if i < 0 {
		return items
	}
	out := clone(items)
	out[i] = v
	return out
}

func removeByID[T storage.Record](items []T, id string) []T {
	return slices.DeleteFunc(clone(items), func(x T) bool { return x.RecordID() == id })
}

func findByID[T storage.Record](items []T, id string) (T, bool) {
	i := slices.IndexFunc(items, func(x T) bool { return x.RecordID() == id })
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}
