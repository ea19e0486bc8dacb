package medication

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	schedules []Schedule
	adherence map[DayKey]map[CellKey]string
}

func newTestRepo() *testRepo {
	return &testRepo{
		schedules: []Schedule{},
		adherence: map[DayKey]map[CellKey]string{},
	}
}

func (r *testRepo) CreateSchedule(_ context.Context, s Schedule) error {
	r.schedules = append(r.schedules, s)
	return nil
}

func (r *testRepo) DeleteSchedule(_ context.Context, id string) error {
	for i, s := range r.schedules {
		if s.ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *testRepo) GetSchedule(_ context.Context, id string) (Schedule, error) {
	for _, s := range r.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return Schedule{}, errRepoNotFound
}

func (r *testRepo) ListByPet(_ context.Context, petID string) ([]Schedule, error) {
	out := []Schedule{}
	for _, s := range r.schedules {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(_ context.Context) ([]Schedule, error) {
	return append([]Schedule{}, r.schedules...), nil
}

func (r *testRepo) TakenFor(_ context.Context, day DayKey) (map[CellKey]string, error) {
	out := map[CellKey]string{}
	for cell, stamp := range r.adherence[day] {
		out[cell] = stamp
	}
	return out, nil
}

func (r *testRepo) MarkTaken(_ context.Context, day DayKey, cell CellKey, takenAt string) error {
	if r.adherence[day] == nil {
		r.adherence[day] = map[CellKey]string{}
	}
	r.adherence[day][cell] = takenAt
	return nil
}

func (r *testRepo) Unmark(_ context.Context, day DayKey, cell CellKey) error {
	cells, ok := r.adherence[day]
	if !ok {
		return nil
	}
	delete(cells, cell)
	if len(cells) == 0 {
		delete(r.adherence, day)
	}
	return nil
}

func (r *testRepo) PurgeAdherence(_ context.Context, petID, scheduleID string) error {
	for day, cells := range r.adherence {
		if day.PetID != petID {
			continue
		}
		for cell := range cells {
			if cell.ScheduleID == scheduleID {
				delete(cells, cell)
			}
		}
		if len(cells) == 0 {
			delete(r.adherence, day)
		}
	}
	return nil
}

func (r *testRepo) Reset(_ context.Context) error {
	r.schedules = []Schedule{}
	r.adherence = map[DayKey]map[CellKey]string{}
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.today = func() string { return "2025-06-15" }
	svc.nowStamp = func() string { return "2025-06-15 09:30:00" }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestParseTimes(t *testing.T) {
	got := ParseTimes(" 08:00, 20:00 ,, 08:00 ")
	want := []string{"08:00", "20:00", "08:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(ParseTimes("  ,  ,")) != 0 {
		t.Fatal("expected empty result for blank input")
	}
}

func TestAddSchedule_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []AddInput{
		{Drug: "항생제", Times: "08:00"},          // sin mascota
		{PetID: "p1", Times: "08:00"},          // sin fármaco
		{PetID: "p1", Drug: "항생제", Times: " ,"}, // sin horas
	}
	for i, in := range cases {
		if _, err := svc.AddSchedule(ctx, in); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestDosesOn_ExpandsActiveSchedules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	active, _ := svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "항생제", Times: "08:00,20:00"})
	_, _ = svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "비타민", Times: "12:00", Start: "2025-07-01"})

	doses, err := svc.DosesOn(ctx, "p1", "2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doses) != 2 {
		t.Fatalf("expected 2 doses (future schedule inactive), got %d", len(doses))
	}
	for _, d := range doses {
		if d.Schedule.ID != active.ID {
			t.Fatalf("unexpected schedule in expansion: %+v", d)
		}
		if d.Taken {
			t.Fatalf("expected untaken dose, got %+v", d)
		}
	}
}

func TestActiveOn_WindowBoundariesInclusive(t *testing.T) {
	s := Schedule{Start: "2025-06-10", End: "2025-06-20"}
	for _, tc := range []struct {
		date string
		want bool
	}{
		{"2025-06-09", false},
		{"2025-06-10", true},
		{"2025-06-20", true},
		{"2025-06-21", false},
	} {
		if got := s.ActiveOn(tc.date); got != tc.want {
			t.Fatalf("ActiveOn(%q): expected %v, got %v", tc.date, tc.want, got)
		}
	}

	open := Schedule{}
	if !open.ActiveOn("1990-01-01") || !open.ActiveOn("2999-12-31") {
		t.Fatal("schedule without window should always be active")
	}
}

func TestMarkTaken_Idempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sch, _ := svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "항생제", Times: "08:00"})

	stamp1, err := svc.MarkTaken(ctx, "p1", sch.ID, "08:00", "2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.nowStamp = func() string { return "2025-06-15 10:00:00" }
	stamp2, err := svc.MarkTaken(ctx, "p1", sch.ID, "08:00", "2025-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stamp1 == stamp2 {
		t.Fatal("expected refreshed timestamp on repeat mark")
	}

	day := DayKey{PetID: "p1", Date: "2025-06-15"}
	cells := repo.adherence[day]
	if len(cells) != 1 {
		t.Fatalf("expected single cell after repeated mark, got %d", len(cells))
	}
	if got := cells[CellKey{ScheduleID: sch.ID, Time: "08:00"}]; got != stamp2 {
		t.Fatalf("expected %q stored, got %q", stamp2, got)
	}
}

func TestMarkUntaken_RemovesCellAndPrunesDay(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sch, _ := svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "항생제", Times: "08:00"})
	_, _ = svc.MarkTaken(ctx, "p1", sch.ID, "08:00", "2025-06-15")

	if err := svc.MarkUntaken(ctx, "p1", sch.ID, "08:00", "2025-06-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := DayKey{PetID: "p1", Date: "2025-06-15"}
	if _, ok := repo.adherence[day]; ok {
		t.Fatal("expected empty day to be pruned")
	}

	// desmarcar lo ya desmarcado es silencioso
	if err := svc.MarkUntaken(ctx, "p1", sch.ID, "08:00", "2025-06-15"); err != nil {
		t.Fatalf("unexpected error on repeat unmark: %v", err)
	}
}

func TestDeleteSchedule_PurgesAdherence(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sch, _ := svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "항생제", Times: "08:00,20:00"})
	other, _ := svc.AddSchedule(ctx, AddInput{PetID: "p1", Drug: "비타민", Times: "12:00"})

	_, _ = svc.MarkTaken(ctx, "p1", sch.ID, "08:00", "2025-06-14")
	_, _ = svc.MarkTaken(ctx, "p1", sch.ID, "20:00", "2025-06-15")
	_, _ = svc.MarkTaken(ctx, "p1", other.ID, "12:00", "2025-06-15")

	if err := svc.DeleteSchedule(ctx, sch.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetSchedule(ctx, sch.ID); err == nil {
		t.Fatal("expected schedule gone")
	}
	if _, ok := repo.adherence[DayKey{PetID: "p1", Date: "2025-06-14"}]; ok {
		t.Fatal("expected day of deleted schedule pruned")
	}
	cells := repo.adherence[DayKey{PetID: "p1", Date: "2025-06-15"}]
	if len(cells) != 1 {
		t.Fatalf("expected only the other schedule's cell to survive, got %d", len(cells))
	}
	if _, ok := cells[CellKey{ScheduleID: other.ID, Time: "12:00"}]; !ok {
		t.Fatal("expected other schedule's cell untouched")
	}
}

func TestDeleteSchedule_UnknownIDIsSilent(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.DeleteSchedule(context.Background(), "nope"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
}
