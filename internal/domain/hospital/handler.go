package hospital

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petmate/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/hospital-events", func(hr chi.Router) {
		hr.Post("/", addEventHandler(svc))
		hr.Get("/", listEventsHandler(svc))
	})

	r.Delete("/hospital-events/{eventID}", deleteEventHandler(svc))
}

type addEventRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
	Place string `json:"place"`
	Notes string `json:"notes"`
}

type eventResponse struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`
	Title string `json:"title"`
	DT    string `json:"dt"`
	Place string `json:"place"`
	Notes string `json:"notes"`
}

func addEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Add(r.Context(), AddInput{
			PetID: chi.URLParam(r, "petID"),
			Title: req.Title,
			Date:  req.Date,
			Time:  req.Time,
			Place: req.Place,
			Notes: req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler devuelve los eventos ascendente por dt.
// Con ?date=YYYY-MM-DD filtra por prefijo de fecha.
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")

		var (
			items []Event
			err   error
		)
		if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
			items, err = svc.OnDate(r.Context(), petID, date)
		} else {
			items, err = svc.ListByPet(r.Context(), petID)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:    e.ID,
		PetID: e.PetID,
		Title: e.Title,
		DT:    e.DT,
		Place: e.Place,
		Notes: e.Notes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
