package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LoadFile reads the product export at path and replaces the store snapshot.
// On failure the store degrades to an empty catalog so ranking calls keep
// returning (empty) results; the error is reported to the caller for logging.
func LoadFile(store *Store, path string) error {
	rows, err := readRows(path)
	if err != nil {
		store.Clear()
		log.Printf("[CATALOG] load of %s failed, serving empty catalog: %v", path, err)
		return err
	}
	store.Load(rows)
	return nil
}

// readRows parses the CSV into ordered row maps keyed by header name.
// Columns absent from the header simply never appear in the maps; rows with
// every cell blank are skipped. Ragged rows are tolerated.
func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", len(rows)+2, err)
		}

		row := make(map[string]string, len(header))
		blank := true
		for i, name := range header {
			var value string
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				blank = false
			}
			row[name] = value
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
