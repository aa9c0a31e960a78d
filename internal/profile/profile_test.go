package profile

import (
	"math"
	"testing"
)

func TestSummarizeNumericColumn(t *testing.T) {
	s, ok := Summarize("qty", []string{"1", "2", "3", "4", "5"})
	if !ok {
		t.Fatal("expected numeric column to be summarized")
	}

	if s.Column != "qty" {
		t.Errorf("Column = %s, want qty", s.Column)
	}
	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if s.Missing != 0 {
		t.Errorf("Missing = %d, want 0", s.Missing)
	}
	if math.Abs(s.Mean-3) > 1e-9 {
		t.Errorf("Mean = %f, want 3", s.Mean)
	}
	if math.Abs(s.Median-3) > 1e-9 {
		t.Errorf("Median = %f, want 3", s.Median)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("Min/Max = %f/%f, want 1/5", s.Min, s.Max)
	}
	if s.StdDev <= 0 {
		t.Errorf("StdDev = %f, want > 0", s.StdDev)
	}
	// symmetric data has no skew
	if math.Abs(s.Skewness) > 1e-9 {
		t.Errorf("Skewness = %f, want 0", s.Skewness)
	}
}

func TestSummarizeCountsMissing(t *testing.T) {
	s, ok := Summarize("price", []string{"1.5", "", "2.5", "  ", "3.5"})
	if !ok {
		t.Fatal("expected numeric column to be summarized")
	}
	if s.Missing != 2 {
		t.Errorf("Missing = %d, want 2", s.Missing)
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
}

func TestSummarizeRejectsTextColumn(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"all text", []string{"flour", "sugar", "salt"}},
		{"mostly text", []string{"1", "flour", "sugar", "salt", "butter"}},
		{"all missing", []string{"", "", ""}},
		{"no values", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Summarize("col", tt.values); ok {
				t.Errorf("expected column %v to be rejected", tt.values)
			}
		})
	}
}

func TestSummarizeColumnsPreservesHeaderOrder(t *testing.T) {
	columns := map[string][]string{
		"item":  {"flour", "sugar", "salt"},
		"qty":   {"12", "7", "30"},
		"price": {"3.5", "1.25", "0.8"},
	}

	summaries := SummarizeColumns([]string{"item", "qty", "price"}, func(name string) []string {
		return columns[name]
	})

	if len(summaries) != 2 {
		t.Fatalf("expected 2 numeric columns, got %d", len(summaries))
	}
	if summaries[0].Column != "qty" || summaries[1].Column != "price" {
		t.Errorf("unexpected order: %s, %s", summaries[0].Column, summaries[1].Column)
	}
}

func TestNormalityOnUniformSpread(t *testing.T) {
	values := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		values = append(values, "5")
	}
	// zero variance: not normal, but must not panic or NaN
	s, ok := Summarize("flat", values)
	if !ok {
		t.Fatal("expected constant numeric column to be summarized")
	}
	if math.IsNaN(s.NormalP) {
		t.Error("NormalP is NaN for constant column")
	}
}
