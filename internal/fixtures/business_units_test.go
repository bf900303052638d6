package fixtures

import (
	"encoding/csv"
	"math/rand"
	"os"
	"strconv"
	"testing"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return rows
}

func TestWriteBusinessUnits(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteBusinessUnits(dir, 20, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) < 2 {
		t.Fatalf("fixture has %d rows, want header plus data", len(rows))
	}
	if got := rows[0][0]; got != "Unit_ID" {
		t.Fatalf("header[0] = %q, want Unit_ID", got)
	}

	names := map[string]bool{}
	for i, row := range rows[1:] {
		id, err := strconv.Atoi(row[0])
		if err != nil || id != i+1 {
			t.Fatalf("row %d id = %q, want sequential %d", i, row[0], i+1)
		}
		if names[row[1]] {
			t.Fatalf("duplicate unit name %q", row[1])
		}
		names[row[1]] = true
	}
}

func TestWriteBusinessUnitsAppends(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteBusinessUnits(dir, 10, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path, err := WriteBusinessUnits(dir, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	rows := readRows(t, path)
	for i, row := range rows[1:] {
		if row[0] != strconv.Itoa(i+1) {
			t.Fatalf("row %d not renumbered: id %q", i, row[0])
		}
	}
}
