package insights

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) {
	r.Get("/pets/{petID}/insights", listInsightsHandler(svc, pets, rsp))
}

// listInsightsHandler godoc
// @Summary Listar insights de la mascota
// @Tags insights
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Insight
// @Router /pets/{petID}/insights [get]
func listInsightsHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
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
