package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petmate/internal/middleware"
	"petmate/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", signupHandler(svc))
		ar.Post("/login", loginHandler(svc, issuer))
		ar.Post("/logout", logoutHandler())
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	Token    string `json:"token,omitempty"`
}

// signupHandler godoc
// @Summary Registrar usuario
// @Description Crea una credencial nueva. Falla con 409 si el username ya existe y con 400 si algún campo queda vacío tras recortar espacios.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credenciales"
// @Success 201
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "username already exists"
// @Router /auth/signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := svc.Signup(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusCreated)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateUsername):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida credenciales y devuelve un token de sesión. En modo dev (sin secret configurado) la respuesta no trae token y se usa el header X-Debug-User.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 401 {string} string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		resp := sessionResponse{Username: u.Username, Admin: IsAdmin(u.Username)}
		if issuer != nil {
			tok, err := issuer.Issue(r.Context(), u.Username)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			resp.Token = tok
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// logoutHandler: las sesiones son tokens sin estado; el logout real es
// descartar el token en el cliente. El endpoint existe por paridad.
func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
