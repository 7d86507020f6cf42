package pets

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes espera un router que ya exige usuario (middleware.RequireUser).
func RegisterRoutes(r chi.Router, svc *Service, rsp httpx.Responder) {
	r.Get("/pets", listPetsHandler(svc, rsp))
	r.Post("/pets", createPetHandler(svc, rsp))
	r.Get("/pets/{petID}", getPetHandler(svc, rsp))
	r.Put("/pets/{petID}", updatePetHandler(svc, rsp))
	r.Delete("/pets/{petID}", deletePetHandler(svc, rsp))
	r.Get("/pets/{petID}/trends", trendsHandler(svc, rsp))
}

// listPetsHandler godoc
// @Summary Listar mascotas del usuario
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} Pet
// @Failure 401 {object} object "unauthenticated"
// @Router /pets [get]
func listPetsHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		items, err := svc.ListByOwner(r.Context(), uid)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota para el usuario autenticado. Si viene peso y no historial, se registra el primer punto con la fecha de hoy.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body Pet true "Perfil; id y ownerId se ignoran"
// @Success 201 {object} Pet
// @Failure 422 {object} object "validación"
// @Router /pets [post]
func createPetHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		var req Pet
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}

		p, err := svc.Create(r.Context(), uid, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusCreated, p)
	}
}

func getPetHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := svc.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler reemplaza el perfil completo; el id del path manda sobre el del body.
func updatePetHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		var req Pet
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		req.ID = chi.URLParam(r, "petID")

		p, err := svc.Update(r.Context(), uid, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, p)
	}
}

func deletePetHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), uid, chi.URLParam(r, "petID")); err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.NoContent(w)
	}
}

func trendsHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		points, err := svc.Trends(r.Context(), uid, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, points)
	}
}
