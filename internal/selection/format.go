package selection

import (
	"math"
	"strconv"

	"quoting-engine/internal/model"
)

// FormatMoney renders an MXN amount with no decimals: 265000 -> "$265,000".
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupThousands(strconv.FormatInt(int64(math.Round(v)), 10))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// FormatNumber renders a plain number, grouping integral values.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		neg := v < 0
		if neg {
			v = -v
		}
		s := groupThousands(strconv.FormatInt(int64(v), 10))
		if neg {
			return "-" + s
		}
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValue renders a feature value according to its criterion kind.
// Missing values render as "-".
func FormatValue(c model.Criterion, v float64, present bool) string {
	if !present {
		return "-"
	}
	switch c.Kind {
	case model.KindCurrency:
		return FormatMoney(v)
	case model.KindPercentage:
		return FormatNumber(v) + "%"
	case model.KindDayCount:
		return FormatNumber(v) + " dias"
	case model.KindBoolean:
		if v != 0 {
			return "Si"
		}
		return "No"
	default:
		return FormatNumber(v)
	}
}

// Suffix is the unit hint appended after certain feature values.
func Suffix(line model.ProductLine, key string) string {
	if line == model.LineAuto && (key == "liability" || key == "collision" || key == "theft") {
		return " (mil MXN)"
	}
	if line == model.LineLife && key == "sumAssuredM" {
		return " M"
	}
	return ""
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
