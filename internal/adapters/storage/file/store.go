// Package file persiste el estado en archivos planos bajo un directorio
// de datos: JSON por entidad y CSV para los registros de consumo, en el
// mismo formato que los archivos originales. Cada repo hidrata su
// estado en memoria al construirse y reescribe el archivo completo en
// cada mutación (write-through).
package file

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrNotFound  = errors.New("file: not found")
	ErrDuplicate = errors.New("file: duplicate key")
)

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// LoadJSON deserializa el archivo en out. Devuelve false si el archivo
// no existe o está corrupto; el caller conserva su valor por defecto.
func (s *Store) LoadJSON(name string, out any) bool {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (s *Store) SaveJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), raw, 0o644)
}

// LoadCSV lee el archivo y devuelve las filas con las columnas en el
// orden de cols. La cabecera del archivo debe tener exactamente el
// mismo conjunto de columnas (el orden puede variar); cualquier
// desajuste de esquema, archivo ausente o CSV ilegible devuelve false.
func (s *Store) LoadCSV(name string, cols []string) ([][]string, bool) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) == 0 {
		return nil, false
	}

	header := records[0]
	if len(header) != len(cols) {
		return nil, false
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	order := make([]int, len(cols))
	for i, c := range cols {
		j, ok := idx[c]
		if !ok {
			return nil, false
		}
		order[i] = j
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(cols) {
			return nil, false
		}
		row := make([]string, len(cols))
		for i, j := range order {
			row[i] = rec[j]
		}
		rows = append(rows, row)
	}
	return rows, true
}

func (s *Store) SaveCSV(name string, cols []string, rows [][]string) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
