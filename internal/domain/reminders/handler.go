package reminders

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) {
	r.Get("/pets/{petID}/reminders", listRemindersHandler(svc, pets, rsp))
	r.Post("/pets/{petID}/reminders", createReminderHandler(svc, pets, rsp))

	// Rutas singulares: se autoriza contra la mascota dueña del recordatorio.
	r.Put("/reminders/{reminderID}", updateReminderHandler(svc, pets, rsp))
	r.Delete("/reminders/{reminderID}", deleteReminderHandler(svc, pets, rsp))
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Description Devuelve los recordatorios de la mascota en orden de creación.
// @Tags reminders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Reminder
// @Failure 403 {object} object "forbidden"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID}/reminders [get]
func listRemindersHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
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

func createReminderHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := pets.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Reminder
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}

		rem, err := svc.Create(r.Context(), petID, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusCreated, rem)
	}
}

func updateReminderHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "reminderID"))
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		if err := pets.Authorize(r.Context(), current.PetID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Reminder
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		req.ID = current.ID

		rem, err := svc.Update(r.Context(), req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, rem)
	}
}

func deleteReminderHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		current, err := svc.GetByID(r.Context(), chi.URLParam(r, "reminderID"))
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
