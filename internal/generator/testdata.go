package generator

import (
	"encoding/json"
	"strings"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

// valueSet holds the canned test values for one input type
type valueSet struct {
	valid    string
	invalid  string
	boundary map[string]string
}

var valueSets = map[string]valueSet{
	"email": {
		valid:   "test@example.com",
		invalid: "invalid-email",
		boundary: map[string]string{
			"min": "a@b.c",
			"max": strings.Repeat("a", 50) + "@example.com",
		},
	},
	"password": {
		valid:   "ValidPass123!",
		invalid: "123",
		boundary: map[string]string{
			"min": "a",
			"max": strings.Repeat("a", 100),
		},
	},
	"tel": {
		valid:   "13800138000",
		invalid: "abc",
		boundary: map[string]string{
			"min": "1",
			"max": strings.Repeat("1", 20),
		},
	},
	"number": {
		valid:   "100",
		invalid: "abc",
		boundary: map[string]string{
			"min":      "0",
			"max":      "999999999",
			"negative": "-1",
		},
	},
}

var defaultValues = valueSet{
	valid:   "test_value",
	invalid: "",
	boundary: map[string]string{
		"empty":   "",
		"min":     "a",
		"max":     strings.Repeat("x", 256),
		"special": "@#$%^&*()",
	},
}

func lookupValues(inputType string) valueSet {
	if values, ok := valueSets[inputType]; ok {
		return values
	}
	return defaultValues
}

// validValue returns the canned valid value for an input element
func validValue(el domain.PageElement) string {
	return lookupValues(el.Attributes.Type).valid
}

// invalidValue returns the canned invalid value for an input element
func invalidValue(el domain.PageElement) string {
	return lookupValues(el.Attributes.Type).invalid
}

// fieldKey derives the test-data key for an input: name, then id, then a
// generic fallback. Colliding keys overwrite; the last extracted field wins.
func fieldKey(el domain.PageElement) string {
	if el.Name != "" {
		return el.Name
	}
	if el.ID != "" {
		return el.ID
	}
	return "field"
}

// TestDataPageInfo identifies the page a data file belongs to
type TestDataPageInfo struct {
	URL  string          `json:"url"`
	Type domain.PageType `json:"type"`
}

// TestData is the generated test data for one page, keyed by field
type TestData struct {
	PageInfo TestDataPageInfo             `json:"page_info"`
	Valid    map[string]string            `json:"valid_data"`
	Invalid  map[string]string            `json:"invalid_data"`
	Boundary map[string]map[string]string `json:"boundary_data"`
}

// Render serializes the test data as indented JSON. Map keys sort, so output
// is stable across runs.
func (d *TestData) Render() (string, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

// TestDataGenerator derives per-field test data from the page's inputs
type TestDataGenerator struct{}

// NewTestDataGenerator creates a test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{}
}

// Generate builds the valid/invalid/boundary data sets for every input
// element, keyed by field
func (g *TestDataGenerator) Generate(info *domain.PageInfo) *TestData {
	data := &TestData{
		PageInfo: TestDataPageInfo{URL: info.URL, Type: info.PageType},
		Valid:    map[string]string{},
		Invalid:  map[string]string{},
		Boundary: map[string]map[string]string{},
	}

	for _, el := range info.Inputs() {
		key := fieldKey(el)
		values := lookupValues(el.Attributes.Type)

		data.Valid[key] = values.valid
		data.Invalid[key] = values.invalid

		boundary := make(map[string]string, len(values.boundary))
		for k, v := range values.boundary {
			boundary[k] = v
		}
		data.Boundary[key] = boundary
	}

	return data
}
