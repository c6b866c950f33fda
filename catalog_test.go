package main

import (
	"reflect"
	"testing"
)

func TestParseCatalogRejectsNonObjectRoots(t *testing.T) {
	cases := map[string]string{
		"array":   `[{"issue":"x"}]`,
		"string":  `"catalog"`,
		"null":    `null`,
		"number":  `42`,
		"garbage": `{not json`,
		"empty":   ``,
	}
	for name, doc := range cases {
		if _, err := parseCatalog([]byte(doc)); err == nil {
			t.Errorf("%s: expected error for %q", name, doc)
		}
	}
}

func TestParseCatalogPreservesKeyOrder(t *testing.T) {
	doc := `{
		"Zeta": [{"issue": "last alphabetically, first in the doc"}],
		"Alpha": [{"issue": "a"}],
		"Mid": []
	}`
	cat, err := parseCatalog([]byte(doc))
	if err != nil {
		t.Fatalf("parseCatalog: %v", err)
	}
	want := []string{"Zeta", "Alpha", "Mid"}
	if !reflect.DeepEqual(cat.Categories, want) {
		t.Fatalf("Categories = %v, want %v", cat.Categories, want)
	}
	if cat.FirstCategory() != "Zeta" {
		t.Fatalf("FirstCategory = %q", cat.FirstCategory())
	}
}

func TestParseCatalogRecordFields(t *testing.T) {
	doc := `{"Cooling": [{
		"id": "c1",
		"issue": "No cold air",
		"symptoms": "warm vents",
		"diagnostics": "gauge check",
		"laborHours": 1.5,
		"partsCost": 80,
		"qty": 2,
		"sku": "SKU-1"
	}]}`
	cat, err := parseCatalog([]byte(doc))
	if err != nil {
		t.Fatalf("parseCatalog: %v", err)
	}
	rec, ok := cat.findIssue("Cooling", "c1")
	if !ok {
		t.Fatal("record not found by id")
	}
	if rec.LaborHours != 1.5 || rec.PartsCost != 80 || rec.Quantity != 2 {
		t.Fatalf("numeric defaults = %v/%v/%v", rec.LaborHours, rec.PartsCost, rec.Quantity)
	}
}

func TestIssueKeyFallsBackToTitle(t *testing.T) {
	rec := issueRecord{Issue: "Blower motor dead"}
	if rec.Key() != "Blower motor dead" {
		t.Fatalf("Key = %q", rec.Key())
	}
	rec.ID = "air-1"
	if rec.Key() != "air-1" {
		t.Fatalf("Key = %q", rec.Key())
	}
}

func TestFilterIssuesSearchScope(t *testing.T) {
	cat := &catalog{
		Categories: []string{"Cooling"},
		Issues: map[string][]issueRecord{
			"Cooling": {
				{ID: "a", Issue: "Weak airflow", Symptoms: "vents barely blow"},
				{ID: "b", Issue: "No cooling", Diagnostics: "gauge pressures low"},
				{ID: "c", Issue: "Leak", Cause: "corroded coil", SKU: "COIL-9"},
			},
		},
	}

	got := cat.filterIssues("Cooling", "barely")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("symptom search = %v", got)
	}

	// Diagnostics text is not searchable.
	if got := cat.filterIssues("Cooling", "gauge"); len(got) != 0 {
		t.Fatalf("diagnostics matched: %v", got)
	}

	if got := cat.filterIssues("Cooling", "coil-9"); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("sku search = %v", got)
	}

	// Empty query returns everything, whitespace-only too.
	if got := cat.filterIssues("Cooling", "   "); len(got) != 3 {
		t.Fatalf("blank query returned %d records", len(got))
	}
}

func TestFilterIssuesUnknownCategory(t *testing.T) {
	cat := sampleCatalog()
	if got := cat.filterIssues("Plumbing", ""); got != nil {
		t.Fatalf("unknown category returned %v", got)
	}
}

func TestSampleCatalogShape(t *testing.T) {
	cat := sampleCatalog()
	if cat.FirstCategory() != "Cooling" {
		t.Fatalf("FirstCategory = %q", cat.FirstCategory())
	}
	for _, name := range cat.Categories {
		if !cat.HasCategory(name) {
			t.Fatalf("category %q listed but absent from Issues", name)
		}
		if len(cat.Issues[name]) == 0 {
			t.Fatalf("category %q has no issues", name)
		}
	}
	rec, ok := cat.findIssue("Cooling", "cool-cap")
	if !ok {
		t.Fatal("cool-cap missing from sample")
	}
	if rec.LaborHours != 0.7 || rec.PartsCost != 65 || rec.Quantity != 1 {
		t.Fatalf("cool-cap defaults = %v/%v/%v", rec.LaborHours, rec.PartsCost, rec.Quantity)
	}
}
