package xmlmock

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// DataType is the inferred category of a leaf text value.
type DataType int

const (
	TypeString DataType = iota
	TypeInt
	TypeFloat
	TypeDate
)

func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDate:
		return "date"
	default:
		return "string"
	}
}

// dateLayouts are the formats a dash- or slash-separated value is checked
// against before being classified as a date. The first layout is also the
// format mocked dates are rendered in.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	time.RFC3339,
}

// Infer classifies a trimmed leaf text value. Predicates run in order and the
// first match wins: a digit-only value is an int, anything parseable as a
// floating point number is a float, a value containing '-' or '/' that
// matches a known date layout is a date, and everything else is a string.
func Infer(value string) DataType {
	if value == "" {
		return TypeString
	}
	if govalidator.IsNumeric(value) {
		return TypeInt
	}
	if govalidator.IsFloat(value) {
		return TypeFloat
	}
	if strings.ContainsAny(value, "-/") && isDate(value) {
		return TypeDate
	}
	return TypeString
}

// isDate never propagates parse failures; an unparseable value simply isn't a
// date.
func isDate(value string) bool {
	for _, layout := range dateLayouts {
		if govalidator.IsTime(value, layout) {
			return true
		}
	}
	return false
}
