package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
)

var (
	ErrMissingHeader = errors.New("csvfile: missing header row")
	ErrNoLoginColumn = errors.New("csvfile: header has no login column")
)

// readRows calls fn for every data row of the file at path, keyed by the
// header names. Short rows yield only the columns they have; surplus cells
// are dropped. When only is non-empty, columns outside it are skipped.
func readRows(path string, only []string, fn func(row map[string]string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		// An empty file holds no rows.
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingHeader, err)
	}

	loginCol := -1
	for i, name := range header {
		if name == domain.FieldLogin {
			loginCol = i
			break
		}
	}
	if loginCol < 0 {
		return ErrNoLoginColumn
	}

	keep := make(map[string]bool, len(only))
	for _, name := range only {
		keep[name] = true
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if loginCol >= len(rec) || rec[loginCol] == "" {
			continue
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(rec) {
				break
			}
			if len(keep) > 0 && !keep[name] {
				continue
			}
			row[name] = rec[i]
		}
		fn(row)
	}
}

// writeRows replaces the file at path with header followed by rows. The
// content is staged in a sibling temp file and renamed into place.
func writeRows(path string, header []string, rows [][]string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(header); err != nil {
		return err
	}
	if err = w.WriteAll(rows); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
