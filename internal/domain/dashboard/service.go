package dashboard

import (
	"context"
	"strings"

	"petmate/internal/domain/consumption"
	"petmate/internal/domain/hospital"
	"petmate/internal/domain/medication"
	"petmate/internal/domain/pets"
	"petmate/internal/platform/civil"
)

// Summary compone la vista diaria de una mascota: ración recomendada,
// consumido, tomas del día y citas del día.
type Summary struct {
	Pet  pets.Pet
	Date string

	FoodGrams  int
	SnackLimit int
	EatenGrams int

	WaterML int
	DrankML int

	Doses          []medication.Dose
	HospitalEvents []hospital.Event
}

type Service struct {
	pets  *pets.Service
	cons  *consumption.Service
	meds  *medication.Service
	hosp  *hospital.Service
	today func() string
}

func NewService(p *pets.Service, c *consumption.Service, m *medication.Service, h *hospital.Service) *Service {
	return &Service{
		pets:  p,
		cons:  c,
		meds:  m,
		hosp:  h,
		today: civil.Today,
	}
}

func (s *Service) ForPet(ctx context.Context, petID, date string) (Summary, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Summary{}, err
	}
	if strings.TrimSpace(date) == "" {
		date = s.today()
	}

	grams, snack := consumption.RecommendedFoodGrams(p.Species, p.WeightKg)
	waterML := consumption.RecommendedWaterML(p.WeightKg)

	eaten, err := s.cons.SumOnDate(ctx, consumption.TableFeed, p.ID, date)
	if err != nil {
		return Summary{}, err
	}
	drank, err := s.cons.SumOnDate(ctx, consumption.TableWater, p.ID, date)
	if err != nil {
		return Summary{}, err
	}

	doses, err := s.meds.DosesOn(ctx, p.ID, date)
	if err != nil {
		return Summary{}, err
	}
	events, err := s.hosp.OnDate(ctx, p.ID, date)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Pet:            p,
		Date:           date,
		FoodGrams:      grams,
		SnackLimit:     snack,
		EatenGrams:     eaten,
		WaterML:        waterML,
		DrankML:        drank,
		Doses:          doses,
		HospitalEvents: events,
	}, nil
}
