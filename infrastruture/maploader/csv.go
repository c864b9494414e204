// Package maploader reads delimited map files into the integer matrix
// the navigation grid is built from.
package maploader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a comma-delimited occupancy file and returns its matrix.
// Every row must hold the same number of integer fields.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()

	// The reader enforces a uniform field count across records.
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	matrix := make([][]int, 0, len(records))
	for i, record := range records {
		row := make([]int, 0, len(record))
		for j, field := range record {
			value, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("map cell %d,%d: %w", i, j, err)
			}
			row = append(row, value)
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}
