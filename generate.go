package xmlmock

import (
	"math"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces mock replacement values for leaf text. A zero seed draws
// a random one; any other seed yields a reproducible value stream.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a Generator backed by its own random source.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Value returns a mock value of the given type, rendered as element text:
// ints and floats land in [0,100], floats carry at most two decimals, dates
// use the 2006-01-02 layout, and strings are a single word.
func (g *Generator) Value(t DataType) string {
	switch t {
	case TypeInt:
		return strconv.Itoa(g.faker.Number(0, 100))
	case TypeFloat:
		f := math.Round(g.faker.Float64Range(0, 100)*100) / 100
		return strconv.FormatFloat(f, 'f', -1, 64)
	case TypeDate:
		return g.faker.Date().Format(dateLayouts[0])
	default:
		return g.faker.Word()
	}
}
