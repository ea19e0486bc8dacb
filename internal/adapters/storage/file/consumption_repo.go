package file

import (
	"context"
	"strconv"
	"sync"

	"petmate/internal/domain/consumption"
)

const (
	feedFile  = "feed_log.csv"
	waterFile = "water_log.csv"
)

// Cabeceras de los CSV originales; solo cambia la columna de cantidad.
var (
	feedCols  = []string{"log_id", "pet_id", "date", "amount_g", "memo"}
	waterCols = []string{"log_id", "pet_id", "date", "amount_ml", "memo"}
)

type ConsumptionRepo struct {
	store *Store

	mu   sync.Mutex
	rows map[consumption.Table][]consumption.Entry
}

func NewConsumptionRepo(store *Store) *ConsumptionRepo {
	r := &ConsumptionRepo{
		store: store,
		rows: map[consumption.Table][]consumption.Entry{
			consumption.TableFeed:  {},
			consumption.TableWater: {},
		},
	}
	r.hydrate(consumption.TableFeed)
	r.hydrate(consumption.TableWater)
	return r
}

func tableFile(t consumption.Table) (string, []string) {
	if t == consumption.TableWater {
		return waterFile, waterCols
	}
	return feedFile, feedCols
}

func (r *ConsumptionRepo) hydrate(t consumption.Table) {
	name, cols := tableFile(t)
	raw, ok := r.store.LoadCSV(name, cols)
	if !ok {
		return
	}
	entries := make([]consumption.Entry, 0, len(raw))
	for _, row := range raw {
		// Cantidad ilegible se lee como 0, no se descarta la fila.
		amount, _ := strconv.Atoi(row[3])
		entries = append(entries, consumption.Entry{
			LogID:  row[0],
			PetID:  row[1],
			Date:   row[2],
			Amount: amount,
			Memo:   row[4],
		})
	}
	r.rows[t] = entries
}

func (r *ConsumptionRepo) save(t consumption.Table) error {
	name, cols := tableFile(t)
	raw := make([][]string, 0, len(r.rows[t]))
	for _, e := range r.rows[t] {
		raw = append(raw, []string{e.LogID, e.PetID, e.Date, strconv.Itoa(e.Amount), e.Memo})
	}
	return r.store.SaveCSV(name, cols, raw)
}

func (r *ConsumptionRepo) Append(_ context.Context, t consumption.Table, e consumption.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[t] = append(r.rows[t], e)
	return r.save(t)
}

func (r *ConsumptionRepo) Delete(_ context.Context, t consumption.Table, logID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.rows[t] {
		if e.LogID == logID {
			r.rows[t] = append(r.rows[t][:i], r.rows[t][i+1:]...)
			return r.save(t)
		}
	}
	return nil
}

func (r *ConsumptionRepo) ListRange(_ context.Context, t consumption.Table, petID, from, to string) ([]consumption.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []consumption.Entry{}
	for _, e := range r.rows[t] {
		if e.PetID == petID && from <= e.Date && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ConsumptionRepo) SumOnDate(_ context.Context, t consumption.Table, petID, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, e := range r.rows[t] {
		if e.PetID == petID && e.Date == date {
			total += e.Amount
		}
	}
	return total, nil
}

func (r *ConsumptionRepo) Count(_ context.Context, t consumption.Table) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows[t]), nil
}

func (r *ConsumptionRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[consumption.TableFeed] = []consumption.Entry{}
	r.rows[consumption.TableWater] = []consumption.Entry{}
	if err := r.save(consumption.TableFeed); err != nil {
		return err
	}
	return r.save(consumption.TableWater)
}
