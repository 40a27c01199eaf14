package model

// ValueKind tags how a feature value is rendered.
type ValueKind string

const (
	KindCurrency   ValueKind = "currency"
	KindPercentage ValueKind = "percentage"
	KindDayCount   ValueKind = "day_count"
	KindBoolean    ValueKind = "boolean"
	KindNumber     ValueKind = "number"
)

// Feature key shared by every catalog; all other keys vary per line.
const FeaturePriceMonthly = "priceMonthly"

// PolicyOffer is a single insurer product variant. Catalog data,
// never created or mutated at runtime.
type PolicyOffer struct {
	ID            string             `json:"id"`
	Brand         string             `json:"brand"`
	Name          string             `json:"name"`
	Tagline       string             `json:"tagline,omitempty"`
	Pros          []string           `json:"pros,omitempty"`
	Cons          []string           `json:"cons,omitempty"`
	Features      map[string]float64 `json:"features"`
	ConditionsURL string             `json:"conditions_url,omitempty"`
}

// Feature returns the named feature value and whether it is present.
func (p PolicyOffer) Feature(key string) (float64, bool) {
	v, ok := p.Features[key]
	return v, ok
}

// Display is the "{brand} - {name}" form used in listings and documents.
func (p PolicyOffer) Display() string {
	return p.Brand + " - " + p.Name
}

// Criterion describes how one feature key is labelled and formatted.
type Criterion struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Help  string    `json:"help"`
	Kind  ValueKind `json:"kind"`
}
