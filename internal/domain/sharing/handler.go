package sharing

import (
	"errors"
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las acciones del dueño (router protegido).
func RegisterRoutes(r chi.Router, svc *Service, petAuth auth.PetAuthorizer, rsp httpx.Responder) {
	r.Post("/pets/{petID}/share", shareHandler(svc, petAuth, rsp))
	r.Delete("/pets/{petID}/share", revokeHandler(svc, petAuth, rsp))
}

// RegisterPublicRoutes monta la vista pública; no requiere token.
func RegisterPublicRoutes(r chi.Router, svc *Service, rsp httpx.Responder) {
	r.Get("/share/pet/{token}", publicPetHandler(svc, rsp))
}

// shareHandler godoc
// @Summary Generar link para compartir
// @Description Reutiliza el link activo si ya existe.
// @Tags sharing
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} ShareResponse
// @Failure 403 {object} object "forbidden"
// @Router /pets/{petID}/share [post]
func shareHandler(svc *Service, petAuth auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := petAuth.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		l, err := svc.Generate(r.Context(), petID, uid)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, ShareResponse{URL: svc.URL(l)})
	}
}

func revokeHandler(svc *Service, petAuth auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := petAuth.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}
		if _, err := svc.RevokeAll(r.Context(), petID); err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.NoContent(w)
	}
}

func publicPetHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Resolve(r.Context(), chi.URLParam(r, "token"))
		if errors.Is(err, ErrRevoked) {
			httpx.Error(w, http.StatusGone, err.Error())
			return
		}
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, p)
	}
}
