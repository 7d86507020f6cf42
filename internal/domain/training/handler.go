package training

import (
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) {
	r.Get("/pets/{petID}/goals", listGoalsHandler(svc, pets, rsp))
	r.Post("/pets/{petID}/goals", createGoalHandler(svc, pets, rsp))
	r.Put("/goals/{goalID}", updateGoalHandler(svc, pets, rsp))
	r.Delete("/goals/{goalID}", deleteGoalHandler(svc, pets, rsp))
	r.Post("/goals/{goalID}/progress", recordProgressHandler(svc, pets, rsp))
}

func listGoalsHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
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

func createGoalHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())
		petID := chi.URLParam(r, "petID")

		if err := pets.Authorize(r.Context(), petID, uid); err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Goal
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		g, err := svc.Create(r.Context(), petID, req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusCreated, g)
	}
}

func ownedGoal(r *http.Request, svc *Service, pets auth.PetAuthorizer) (Goal, error) {
	uid, _ := middleware.UserID(r.Context())

	g, err := svc.GetByID(r.Context(), chi.URLParam(r, "goalID"))
	if err != nil {
		return Goal{}, err
	}
	if err := pets.Authorize(r.Context(), g.PetID, uid); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func updateGoalHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := ownedGoal(r, svc, pets)
		if err != nil {
			httpx.Fail(w, err)
			return
		}

		var req Goal
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}
		req.ID = current.ID

		g, err := svc.Update(r.Context(), req)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, g)
	}
}

func deleteGoalHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := ownedGoal(r, svc, pets)
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

// recordProgressHandler godoc
// @Summary Registrar progreso de un objetivo
// @Description Sin body. Incrementa currentCount y marca completed al llegar a targetCount.
// @Tags training
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param goalID path string true "ID del objetivo"
// @Success 200 {object} Goal
// @Failure 404 {object} object "not found"
// @Router /goals/{goalID}/progress [post]
func recordProgressHandler(svc *Service, pets auth.PetAuthorizer, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := ownedGoal(r, svc, pets)
		if err != nil {
			httpx.Fail(w, err)
			return
		}

		g, err := svc.RecordProgress(r.Context(), current.ID)
		if err != nil {
			httpx.Fail(w, err)
			return
		}
		rsp.JSON(w, http.StatusOK, g)
	}
}
