package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// issueRecord is one catalog entry. Records are immutable once loaded and
// only ever replaced wholesale by a catalog import. Missing fields simply
// render as empty text; there is no per-record schema validation.
type issueRecord struct {
	ID          string  `json:"id,omitempty"`
	Issue       string  `json:"issue"`
	Symptoms    string  `json:"symptoms,omitempty"`
	Cause       string  `json:"cause,omitempty"`
	Diagnostics string  `json:"diagnostics,omitempty"`
	Remedy      string  `json:"remedy,omitempty"`
	LaborHours  float64 `json:"laborHours,omitempty"`
	PartsCost   float64 `json:"partsCost,omitempty"`
	Quantity    float64 `json:"qty,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Code        string  `json:"code,omitempty"`
}

// Key is the selection identifier: the explicit id when present, the
// issue title otherwise.
func (r issueRecord) Key() string {
	if strings.TrimSpace(r.ID) != "" {
		return r.ID
	}
	return r.Issue
}

// matches reports whether needle (already lowercased) occurs in the
// searchable text of the record. Diagnostics is intentionally excluded;
// only title, symptoms, cause, remedy, SKU and code participate.
func (r issueRecord) matches(needle string) bool {
	if needle == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		r.Issue, r.Symptoms, r.Cause, r.Remedy, r.SKU, r.Code,
	}, " "))
	return strings.Contains(haystack, needle)
}

// catalog maps category names to ordered issue lists. Categories keeps
// the key order of the imported document so "first category" is stable.
type catalog struct {
	Categories []string
	Issues     map[string][]issueRecord
}

func (c *catalog) FirstCategory() string {
	if c == nil || len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}

func (c *catalog) HasCategory(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Issues[name]
	return ok
}

// filterIssues returns the issues of category whose searchable text
// contains query, case-insensitively. An empty query returns everything.
func (c *catalog) filterIssues(category, query string) []issueRecord {
	if c == nil {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []issueRecord
	for _, rec := range c.Issues[category] {
		if rec.matches(needle) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *catalog) findIssue(category, key string) (issueRecord, bool) {
	if c == nil || key == "" {
		return issueRecord{}, false
	}
	for _, rec := range c.Issues[category] {
		if rec.Key() == key {
			return rec, true
		}
	}
	return issueRecord{}, false
}

var errInvalidCatalog = errors.New("catalog root must be an object of category lists")

// parseCatalog decodes a catalog document. The only shape requirement is
// a non-null JSON object at the top level; it is walked token-wise so the
// category order of the document survives into Categories.
func parseCatalog(data []byte) (*catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, errInvalidCatalog
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, errInvalidCatalog
	}

	cat := &catalog{Issues: make(map[string][]issueRecord)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errInvalidCatalog
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, errInvalidCatalog
		}
		var records []issueRecord
		if err := dec.Decode(&records); err != nil {
			return nil, errInvalidCatalog
		}
		if _, seen := cat.Issues[name]; !seen {
			cat.Categories = append(cat.Categories, name)
		}
		cat.Issues[name] = records
	}
	if _, err := dec.Token(); err != nil {
		return nil, errInvalidCatalog
	}
	return cat, nil
}

// sampleCatalog seeds a fresh install and is the fallback when the
// persisted catalog blob fails to parse.
func sampleCatalog() *catalog {
	return &catalog{
		Categories: []string{"Cooling", "Heating", "Airflow"},
		Issues: map[string][]issueRecord{
			"Cooling": {
				{
					ID:          "cool-cap",
					Issue:       "AC not cooling — weak airflow at vents",
					Symptoms:    "Unit runs but supply air is barely cool; outdoor fan spins slowly or hums.",
					Cause:       "Failed or weak run capacitor on the condenser fan/compressor.",
					Diagnostics: "Check capacitor microfarads against rating; look for bulged top. Verify amp draw on common.",
					Remedy:      "Replace the dual run capacitor; verify fan and compressor amps after swap.",
					LaborHours:  0.7,
					PartsCost:   65,
					Quantity:    1,
					SKU:         "CAP-4570-440",
					Code:        "C101",
				},
				{
					ID:          "cool-charge",
					Issue:       "AC short on refrigerant charge",
					Symptoms:    "Ice on suction line, low suction pressure, long run times.",
					Cause:       "Slow leak at a flare fitting or coil joint.",
					Diagnostics: "Weigh in against nameplate; bubble-test fittings; electronic leak detector on coils.",
					Remedy:      "Locate and repair leak, evacuate, and recharge to nameplate subcooling.",
					LaborHours:  2.5,
					PartsCost:   180,
					Quantity:    1,
					SKU:         "R410-25",
					Code:        "C205",
				},
				{
					ID:          "cool-drain",
					Issue:       "Condensate drain clogged, float switch tripped",
					Symptoms:    "System dead in high humidity; water in secondary pan.",
					Cause:       "Algae blockage in the primary condensate line.",
					Diagnostics: "Pull the float switch, confirm continuity; inspect trap.",
					Remedy:      "Clear line with nitrogen or vacuum, treat with tablets, reset switch.",
					LaborHours:  0.8,
					PartsCost:   12,
					Quantity:    1,
					SKU:         "DRN-TAB-6",
					Code:        "C310",
				},
			},
			"Heating": {
				{
					ID:          "heat-ign",
					Issue:       "Furnace won't ignite",
					Symptoms:    "Inducer runs, igniter never glows, three flash code.",
					Cause:       "Cracked hot surface igniter.",
					Diagnostics: "Ohm the igniter; anything open or over ~200Ω is done.",
					Remedy:      "Replace hot surface igniter; cycle furnace twice to confirm.",
					LaborHours:  1,
					PartsCost:   48,
					Quantity:    1,
					SKU:         "HSI-601",
					Code:        "H102",
				},
				{
					ID:          "heat-limit",
					Issue:       "Furnace short-cycles on high limit",
					Symptoms:    "Heat runs a few minutes then blower-only; limit code.",
					Cause:       "Dirty filter or failing blower capacitor starving airflow.",
					Diagnostics: "Check temperature rise against data plate; inspect filter and blower wheel.",
					Remedy:      "Replace filter, clean blower wheel, replace capacitor if weak.",
					LaborHours:  1.2,
					PartsCost:   28,
					Quantity:    1,
					SKU:         "BLW-CAP-10",
					Code:        "H214",
				},
			},
			"Airflow": {
				{
					ID:          "air-motor",
					Issue:       "Blower motor dead",
					Symptoms:    "No indoor airflow in any mode; hum from cabinet.",
					Cause:       "Seized PSC blower motor.",
					Diagnostics: "Spin test the wheel, check winding resistance, verify capacitor first.",
					Remedy:      "Replace blower motor and capacitor as a pair.",
					LaborHours:  1.8,
					PartsCost:   210,
					Quantity:    1,
					SKU:         "MTR-PSC-13",
					Code:        "A105",
				},
				{
					ID:          "air-duct",
					Issue:       "Crushed flex duct run",
					Symptoms:    "One room starved for air; whistling at register.",
					Cause:       "Flex duct pinched by stored items or a failed strap.",
					Diagnostics: "Walk the attic run; measure static pressure both sides of the pinch.",
					Remedy:      "Re-hang and re-strap the run, replace the section if the liner tore.",
					LaborHours:  1.5,
					PartsCost:   40,
					Quantity:    1,
					SKU:         "FLX-R8-25",
					Code:        "A220",
				},
			},
		},
	}
}
