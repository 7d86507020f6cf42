package wellness

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) {
	r.Get("/pets/{petID}/wellness", listEntriesHandler(svc, pets, rsp))
	r.Post("/pets/{petID}/wellness", createEntryHandler(svc, pets, rsp))
	r.Put("/wellness/{entryID}", updateEntryHandler(svc, pets, rsp))
	r.Delete("/wellness/{entryID}", deleteEntryHandler(svc, pets, rsp))
}

func listEntriesHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := pets.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}
		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, items)
	}
}

// createEntryHandler godoc
// @Summary Registrar check-in de bienestar
// @Tags wellness
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param payload body Entry true "Puntajes 1..5"
// @Success 201 {object} Entry
// @Failure 422 {object} object "validación"
// @Router /pets/{petID}/wellness [post]
func createEntryHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := pets.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Entry
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		e, err := svc.Create(r.Context(), petID, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusCreated, e)
	}
}

// loadOwned trae la entrada del path y verifica que el usuario sea dueño de su mascota.
func loadOwned(r *http.Request, svc *Service, pets auth.PetAuthorizer) (Entry, error) {
	uid, _ := middleware.UserID(r.Context())

	current, err := svc.GetByID(r.Context(), chi.URLParam(r, "entryID"))
	if err != nil {
		return Entry{}, err
	}
	if err := pets.Authorize(r.Context(), current.PetID, uid); err != nil {
		return Entry{}, err
	}
	return current, nil
}

func updateEntryHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := loadOwned(r, svc, pets)
		if err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Entry
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		req.ID = current.ID

		e, err := svc.Update(r.Context(), req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, e)
	}
}

func deleteEntryHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := loadOwned(r, svc, pets)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		if err := svc.Delete(r.Context(), current.ID); err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.NoContent(w)
	}
}
