package consumption

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petmate/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/logs/{table}", addEntryHandler(svc))
	r.Get("/pets/{petID}/logs/{table}", queryRangeHandler(svc))
	r.Delete("/logs/{table}/{logID}", deleteEntryHandler(svc))
}

type addEntryRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD; vacío = hoy (hora civil)
	Amount int    `json:"amount"`
	Memo   string `json:"memo"`
}

type entryResponse struct {
	LogID  string `json:"log_id"`
	PetID  string `json:"pet_id"`
	Date   string `json:"date"`
	Amount int    `json:"amount"`
	Memo   string `json:"memo"`
}

type dailyTotalResponse struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type queryRangeResponse struct {
	Entries     []entryResponse      `json:"entries"`
	DailyTotals []dailyTotalResponse `json:"daily_totals"`
}

// addEntryHandler godoc
// @Summary Registrar consumo
// @Description Agrega una fila de comida (g) o agua (ml) para la mascota. Cantidades <= 0 se omiten sin error (204).
// @Tags consumption
// @Accept json
// @Produce json
// @Param petID path string true "ID de mascota"
// @Param table path string true "feed o water"
// @Param body body addEntryRequest true "Fila"
// @Success 201 {object} entryResponse
// @Success 204 "cantidad <= 0, omitida"
// @Router /pets/{petID}/logs/{table} [post]
func addEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tbl, ok := ParseTable(chi.URLParam(r, "table"))
		if !ok {
			http.Error(w, "unknown table", http.StatusBadRequest)
			return
		}

		var req addEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Add(r.Context(), tbl, AddInput{
			PetID:  chi.URLParam(r, "petID"),
			Date:   req.Date,
			Amount: req.Amount,
			Memo:   req.Memo,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if e == nil {
			// cantidad <= 0: omitida, sin error
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(*e))
	}
}

func queryRangeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tbl, ok := ParseTable(chi.URLParam(r, "table"))
		if !ok {
			http.Error(w, "unknown table", http.StatusBadRequest)
			return
		}

		entries, totals, err := svc.QueryRange(
			r.Context(),
			tbl,
			chi.URLParam(r, "petID"),
			r.URL.Query().Get("from"),
			r.URL.Query().Get("to"),
		)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := queryRangeResponse{
			Entries:     make([]entryResponse, 0, len(entries)),
			DailyTotals: make([]dailyTotalResponse, 0, len(totals)),
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toEntryResponse(e))
		}
		for _, t := range totals {
			resp.DailyTotals = append(resp.DailyTotals, dailyTotalResponse{Date: t.Date, Total: t.Total})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		tbl, ok := ParseTable(chi.URLParam(r, "table"))
		if !ok {
			http.Error(w, "unknown table", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), tbl, chi.URLParam(r, "logID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		LogID:  e.LogID,
		PetID:  e.PetID,
		Date:   e.Date,
		Amount: e.Amount,
		Memo:   e.Memo,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
