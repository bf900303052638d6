package fixtures

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

var (
	industryWords = []string{
		"Digital", "Analytics", "Cloud", "Cyber", "Strategy",
		"Consulting", "Solutions", "Innovation", "Enterprise",
	}
	locations = []string{
		"North America", "Europe", "Asia Pacific", "South America",
		"Africa", "Middle East", "Australia",
	}
)

var csvHeader = []string{"Unit_ID", "Name", "Location"}

type businessUnit struct {
	Name     string
	Location string
}

// WriteBusinessUnits synthesizes count business-unit fixture rows and
// writes them to BusinessUnit.csv under dir. Rows already present in the
// file are kept, names are deduplicated keeping the first occurrence, and
// unit IDs are renumbered sequentially from 1. Returns the file path.
func WriteBusinessUnits(dir string, count int, rng *rand.Rand) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create fixtures dir: %w", err)
	}
	path := filepath.Join(dir, "BusinessUnit.csv")

	existing, err := readExisting(path)
	if err != nil {
		return "", err
	}

	units := existing
	for i := 0; i < count; i++ {
		word := industryWords[rng.Intn(len(industryWords))]
		location := locations[rng.Intn(len(locations))]
		units = append(units, businessUnit{
			Name:     fmt.Sprintf("%s %s", word, location),
			Location: location,
		})
	}
	units = dedupeByName(units)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return "", err
	}
	for i, unit := range units {
		if err := writer.Write([]string{fmt.Sprintf("%d", i+1), unit.Name, unit.Location}); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func readExisting(path string) ([]businessUnit, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var units []businessUnit
	for i, record := range records {
		if i == 0 || len(record) < 3 {
			continue // header
		}
		units = append(units, businessUnit{Name: record[1], Location: record[2]})
	}
	return units, nil
}

func dedupeByName(units []businessUnit) []businessUnit {
	seen := make(map[string]bool, len(units))
	kept := units[:0]
	for _, unit := range units {
		if seen[unit.Name] {
			continue
		}
		seen[unit.Name] = true
		kept = append(kept, unit)
	}
	return kept
}
