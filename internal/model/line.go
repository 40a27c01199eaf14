package model

// ProductLine is one of the three insured risk categories.
type ProductLine string

const (
	LineAuto   ProductLine = "auto"
	LineHealth ProductLine = "health"
	LineLife   ProductLine = "life"
)

// Label returns the ramo name used in generated documents.
func (l ProductLine) Label() string {
	switch l {
	case LineAuto:
		return "Auto"
	case LineHealth:
		return "GMM"
	case LineLife:
		return "Vida"
	}
	return string(l)
}

func (l ProductLine) Valid() bool {
	return l == LineAuto || l == LineHealth || l == LineLife
}

// Lines returns all product lines in display order.
func Lines() []ProductLine {
	return []ProductLine{LineLife, LineHealth, LineAuto}
}
