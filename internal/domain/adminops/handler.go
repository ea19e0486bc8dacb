package adminops

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petmate/internal/domain/users"
	"petmate/internal/middleware"
	"petmate/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/stats", statsHandler(svc))
		ar.Get("/users", listUsersHandler(svc))
		ar.Delete("/users/{username}", deleteUserHandler(svc))
	})

	// Los reseteos de datos no exigen rol admin, solo sesión.
	r.Post("/data/reset/consumption", resetConsumptionHandler(svc))
	r.Post("/data/reset/domain", resetDomainHandler(svc))
}

type statsResponse struct {
	Pets        int `json:"pets"`
	Schedules   int `json:"med_schedules"`
	FeedLogRows int `json:"feed_log_rows"`
}

type userResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	if !claims.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return auth.Claims{}, false
	}
	return claims, true
}

// statsHandler godoc
// @Summary Contadores del panel de administración
// @Tags admin
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 403 {string} string "forbidden"
// @Router /admin/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Pets:        st.Pets,
			Schedules:   st.Schedules,
			FeedLogRows: st.FeedLogRows,
		})
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		list, err := svc.ListUsers(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		resp := make([]userResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, userResponse{
				Username: u.Username,
				Admin:    users.IsAdmin(u.Username),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireAdmin(w, r)
		if !ok {
			return
		}
		username := chi.URLParam(r, "username")
		err := svc.DeleteUser(r.Context(), claims.Username, username)
		switch {
		case errors.Is(err, ErrSelfDelete):
			http.Error(w, "cannot delete own account", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

func resetConsumptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := svc.ResetConsumption(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func resetDomainHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := svc.ResetDomain(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON duplicado intencionalmente por paquete para mantener los handlers autocontenidos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
