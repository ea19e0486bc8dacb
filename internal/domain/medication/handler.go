package medication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petmate/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/medications", func(mr chi.Router) {
		mr.Post("/", addScheduleHandler(svc))
		mr.Get("/", listSchedulesHandler(svc))
		mr.Get("/today", dosesHandler(svc))

		// Marcar / desmarcar una toma puntual
		mr.Put("/{scheduleID}/doses/{time}/taken", markTakenHandler(svc))
		mr.Delete("/{scheduleID}/doses/{time}/taken", markUntakenHandler(svc))
	})

	r.Delete("/medications/{scheduleID}", deleteScheduleHandler(svc))
}

type addScheduleRequest struct {
	Drug  string `json:"drug"`
	Dose  string `json:"dose"`
	Unit  string `json:"unit"`
	Times string `json:"times"` // "HH:MM, HH:MM" separado por comas
	Start string `json:"start"` // YYYY-MM-DD; vacío = sin límite
	End   string `json:"end"`
	Notes string `json:"notes"`
}

type scheduleResponse struct {
	ID    string   `json:"id"`
	PetID string   `json:"pet_id"`
	Drug  string   `json:"drug"`
	Dose  string   `json:"dose"`
	Unit  string   `json:"unit"`
	Times []string `json:"times"`
	Start string   `json:"start"`
	End   string   `json:"end"`
	Notes string   `json:"notes"`
}

type doseResponse struct {
	ScheduleID string `json:"schedule_id"`
	Time       string `json:"time"`
	Drug       string `json:"drug"`
	Dose       string `json:"dose"`
	Unit       string `json:"unit"`
	Taken      bool   `json:"taken"`
	TakenAt    string `json:"taken_at,omitempty"`
}

type takenResponse struct {
	ScheduleID string `json:"schedule_id"`
	Time       string `json:"time"`
	Date       string `json:"date"`
	TakenAt    string `json:"taken_at"`
}

// addScheduleHandler godoc
// @Summary Crear pauta de medicación
// @Description Crea una pauta recurrente. Requiere nombre de medicamento y al menos una hora; las horas vienen como lista separada por comas y conservan el orden ingresado.
// @Tags medication
// @Accept json
// @Produce json
// @Param petID path string true "ID de mascota"
// @Param body body addScheduleRequest true "Pauta"
// @Success 201 {object} scheduleResponse
// @Failure 400 {string} string "invalid input"
// @Router /pets/{petID}/medications [post]
func addScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sch, err := svc.AddSchedule(r.Context(), AddInput{
			PetID: chi.URLParam(r, "petID"),
			Drug:  req.Drug,
			Dose:  req.Dose,
			Unit:  req.Unit,
			Times: req.Times,
			Start: req.Start,
			End:   req.End,
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

		writeJSON(w, http.StatusCreated, toScheduleResponse(sch))
	}
}

func listSchedulesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toScheduleResponse(m))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// dosesHandler lista las tomas del día: una fila por (pauta activa, hora).
// ?date=YYYY-MM-DD; sin date usa hoy en hora civil.
func dosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		doses, err := svc.DosesOn(r.Context(), chi.URLParam(r, "petID"), r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]doseResponse, 0, len(doses))
		for _, d := range doses {
			out = append(out, doseResponse{
				ScheduleID: d.Schedule.ID,
				Time:       d.Time,
				Drug:       d.Schedule.Drug,
				Dose:       d.Schedule.Dose,
				Unit:       d.Schedule.Unit,
				Taken:      d.Taken,
				TakenAt:    d.TakenAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func markTakenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		scheduleID := chi.URLParam(r, "scheduleID")
		timeStr := chi.URLParam(r, "time")
		date := r.URL.Query().Get("date")

		stamp, err := svc.MarkTaken(r.Context(), petID, scheduleID, timeStr, date)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, takenResponse{
			ScheduleID: scheduleID,
			Time:       timeStr,
			Date:       date,
			TakenAt:    stamp,
		})
	}
}

func markUntakenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.MarkUntaken(
			r.Context(),
			chi.URLParam(r, "petID"),
			chi.URLParam(r, "scheduleID"),
			chi.URLParam(r, "time"),
			r.URL.Query().Get("date"),
		)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteSchedule(r.Context(), chi.URLParam(r, "scheduleID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toScheduleResponse(m Schedule) scheduleResponse {
	return scheduleResponse{
		ID:    m.ID,
		PetID: m.PetID,
		Drug:  m.Drug,
		Dose:  m.Dose,
		Unit:  m.Unit,
		Times: m.Times,
		Start: m.Start,
		End:   m.End,
		Notes: m.Notes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
