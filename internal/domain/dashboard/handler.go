package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petmate/internal/domain/pets"
	"petmate/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets/{petID}/summary", summaryHandler(svc))
}

type summaryResponse struct {
	Pet            petView     `json:"pet"`
	Date           string      `json:"date"`
	FoodGrams      int         `json:"food_grams"`
	SnackLimit     int         `json:"snack_limit_grams"`
	EatenGrams     int         `json:"eaten_grams"`
	WaterML        int         `json:"water_ml"`
	DrankML        int         `json:"drank_ml"`
	Doses          []doseView  `json:"doses"`
	HospitalEvents []eventView `json:"hospital_events"`
}

type petView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	WeightKg float64 `json:"weight_kg"`
}

type doseView struct {
	ScheduleID string `json:"schedule_id"`
	Drug       string `json:"drug"`
	Dose       string `json:"dose"`
	Unit       string `json:"unit"`
	Time       string `json:"time"`
	Taken      bool   `json:"taken"`
	TakenAt    string `json:"taken_at,omitempty"`
}

type eventView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	DT    string `json:"dt"`
	Place string `json:"place"`
	Notes string `json:"notes"`
}

// summaryHandler godoc
// @Summary Resumen diario de la mascota
// @Tags dashboard
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param date query string false "Fecha YYYY-MM-DD (hoy por defecto)"
// @Success 200 {object} summaryResponse
// @Failure 404 {string} string "not found"
// @Router /pets/{petID}/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		petID := chi.URLParam(r, "petID")
		date := r.URL.Query().Get("date")

		sum, err := svc.ForPet(r.Context(), petID, date)
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := summaryResponse{
			Pet: petView{
				ID:       sum.Pet.ID,
				Name:     sum.Pet.Name,
				Species:  sum.Pet.Species,
				WeightKg: sum.Pet.WeightKg,
			},
			Date:           sum.Date,
			FoodGrams:      sum.FoodGrams,
			SnackLimit:     sum.SnackLimit,
			EatenGrams:     sum.EatenGrams,
			WaterML:        sum.WaterML,
			DrankML:        sum.DrankML,
			Doses:          make([]doseView, 0, len(sum.Doses)),
			HospitalEvents: make([]eventView, 0, len(sum.HospitalEvents)),
		}
		for _, d := range sum.Doses {
			resp.Doses = append(resp.Doses, doseView{
				ScheduleID: d.Schedule.ID,
				Drug:       d.Schedule.Drug,
				Dose:       d.Schedule.Dose,
				Unit:       d.Schedule.Unit,
				Time:       d.Time,
				Taken:      d.Taken,
				TakenAt:    d.TakenAt,
			})
		}
		for _, e := range sum.HospitalEvents {
			resp.HospitalEvents = append(resp.HospitalEvents, eventView{
				ID:    e.ID,
				Title: e.Title,
				DT:    e.DT,
				Place: e.Place,
				Notes: e.Notes,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON duplicado intencionalmente por paquete para mantener los handlers autocontenidos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
