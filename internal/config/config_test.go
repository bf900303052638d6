package config

import "testing"

func TestParseGrowthYears(t *testing.T) {
	rates, err := parseGrowthYears("2021:0.08, 2022:0.03")
	if err != nil {
		t.Fatalf("parseGrowthYears returned error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("got %d entries, want 2", len(rates))
	}
	if rates[2021] != 0.08 || rates[2022] != 0.03 {
		t.Fatalf("unexpected rates: %v", rates)
	}
}

func TestParseGrowthYearsEmpty(t *testing.T) {
	rates, err := parseGrowthYears("")
	if err != nil {
		t.Fatalf("parseGrowthYears returned error: %v", err)
	}
	if len(rates) != 0 {
		t.Fatalf("expected empty map, got %v", rates)
	}
}

func TestParseGrowthYearsMalformed(t *testing.T) {
	if _, err := parseGrowthYears("2021=0.08"); err == nil {
		t.Fatal("expected error for malformed entry")
	}
}

func TestValidateYearRange(t *testing.T) {
	cfg := &Config{Generator: GeneratorConfig{StartYear: 2025, EndYear: 2020}}
	if err := validate(cfg); err == nil {
		t.Fatal("expected error for inverted year range")
	}
}
