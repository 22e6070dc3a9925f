package qtable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the table to filename. The data is first written to a
// temporary file in the same directory and then renamed over filename,
// so a reader never observes a partially written table.
func (q *QTable) Save(filename string) error {
	data, err := q.MarshalBinary()
	if err != nil {
		return fmt.Errorf("save: could not encode table: %v", err)
	}

	dir := filepath.Dir(filename)
	file, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save: could not create temporary file: %v", err)
	}
	tmp := file.Name()

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("save: could not write table: %v", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save: could not close temporary file: %v", err)
	}

	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save: could not move table into place: %v", err)
	}
	return nil
}

// Load replaces the table with the one stored in filename and returns
// whether a table was loaded. A missing file is not an error: Load
// returns false and leaves the table as it is. If the file exists but
// cannot be decoded, an error is returned and the table is unchanged.
func (q *QTable) Load(filename string) (bool, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("load: could not read %v: %v", filename, err)
	}

	if err := q.UnmarshalBinary(data); err != nil {
		return false, fmt.Errorf("load: %v: %w", filename, err)
	}
	return true, nil
}
