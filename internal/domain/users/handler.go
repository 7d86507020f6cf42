package users

import (
	"errors"
	"net/http"

	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Tokens agrupa lo que necesitan los handlers de sesión.
type Tokens interface {
	auth.TokenIssuer
	auth.TokenRevoker
}

// RegisterRoutes monta /register y /login públicos; /logout y /user exigen usuario.
func RegisterRoutes(r chi.Router, svc *Service, tokens Tokens, rsp httpx.Responder) {
	r.Post("/register", registerHandler(svc, tokens, rsp))
	r.Post("/login", loginHandler(svc, tokens, rsp))

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireUser)
		pr.Post("/logout", logoutHandler(tokens, rsp))
		pr.Get("/user", currentUserHandler(svc, rsp))
	})
}

// registerHandler godoc
// @Summary Crear cuenta
// @Tags users
// @Accept json
// @Produce json
// @Param payload body RegisterInput true "Datos de registro"
// @Success 201 {object} AuthResponse
// @Failure 409 {object} object "email ya registrado"
// @Failure 422 {object} object "validación"
// @Router /register [post]
func registerHandler(svc *Service, tokens Tokens, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterInput
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}

		u, err := svc.Register(r.Context(), req)
		if errors.Is(err, ErrEmailTaken) {
			httpx.Error(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			httpx.Fail(w, err)
			return
		}

		issueAndRespond(w, r, tokens, rsp, u, http.StatusCreated)
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags users
// @Accept json
// @Produce json
// @Param payload body LoginInput true "Credenciales"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} object "credenciales inválidas"
// @Router /login [post]
func loginHandler(svc *Service, tokens Tokens, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginInput
		if err := httpx.Decode(r, &req); err != nil {
			httpx.Fail(w, err)
			return
		}

		u, err := svc.Login(r.Context(), req)
		if errors.Is(err, auth.ErrUnauthorized) {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			httpx.Fail(w, err)
			return
		}

		issueAndRespond(w, r, tokens, rsp, u, http.StatusOK)
	}
}

func issueAndRespond(w http.ResponseWriter, r *http.Request, tokens Tokens, rsp httpx.Responder, u User, status int) {
	tok, err := tokens.Issue(r.Context(), auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	rsp.JSON(w, status, AuthResponse{User: u, Token: tok})
}

func logoutHandler(tokens Tokens, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// best-effort: el token ya fue validado por AuthContext
		_ = tokens.Revoke(r.Context(), middleware.BearerToken(r))
		rsp.NoContent(w)
	}
}

func currentUserHandler(svc *Service, rsp httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := middleware.UserID(r.Context())

		u, err := svc.Get(r.Context(), uid)
		if err != nil {
			// cuenta borrada con token aún vigente
			httpx.Error(w, http.StatusUnauthorized, "unauthenticated")
			return
		}
		rsp.JSON(w, http.StatusOK, u)
	}
}
