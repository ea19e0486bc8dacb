package unsafedb

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petmate/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/unsafe-items", searchHandler(svc))
	r.Post("/unsafe-items", addItemHandler(svc))
}

type itemPayload struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Risk     string `json:"risk"`
	Why      string `json:"why"`
}

func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemPayload, 0, len(items))
		for _, it := range items {
			out = append(out, itemPayload{
				Category: it.Category,
				Name:     it.Name,
				Risk:     it.Risk,
				Why:      it.Why,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func addItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req itemPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		it, err := svc.Add(r.Context(), Item{
			Category: req.Category,
			Name:     req.Name,
			Risk:     req.Risk,
			Why:      req.Why,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, itemPayload{
			Category: it.Category,
			Name:     it.Name,
			Risk:     it.Risk,
			Why:      it.Why,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
