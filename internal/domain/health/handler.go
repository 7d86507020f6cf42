package health

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) {
	r.Get("/pets/{petID}/health-records", listRecordsHandler(svc, pets, rsp))
	r.Post("/pets/{petID}/health-records", createRecordHandler(svc, pets, rsp))

	// Rutas singulares: se autoriza contra la mascota dueña del registro.
	r.Put("/health-records/{recordID}", updateRecordHandler(svc, pets, rsp))
	r.Delete("/health-records/{recordID}", deleteRecordHandler(svc, pets, rsp))
}

// listRecordsHandler godoc
// @Summary Listar registros de salud
// @Description Devuelve los registros de la mascota, más reciente primero.
// @Tags health
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Record
// @Failure 403 {object} object "forbidden"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID}/health-records [get]
func listRecordsHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
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

func createRecordHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := pets.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Record
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}

		rec, err := svc.Create(r.Context(), petID, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusCreated, rec)
	}
}

func updateRecordHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		if err := pets.Authorize(r.Context(), current.PetID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Record
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		req.ID = current.ID

		rec, err := svc.Update(r.Context(), req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, rec)
	}
}

func deleteRecordHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		if err := pets.Authorize(r.Context(), current.PetID, uid); err != nil {
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
