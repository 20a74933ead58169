package xmlmock

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Options configures a single mocking run.
type Options struct {
	// Input is the path of the XML file to read.
	Input string
	// Output is the destination path. Ignored when Replace is set.
	Output string
	// Node is the tag whose sibling count is normalized; empty skips
	// normalization.
	Node string
	// Count is the target number of Node children per parent.
	Count int
	// Replace writes the result back over Input.
	Replace bool
	// Seed fixes the mock value stream; 0 draws a random seed.
	Seed uint64
	// Indent re-indents output with this many spaces when positive.
	Indent int
}

// Validate reports configuration errors before any file is touched.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Input, validation.Required.Error("input path is required")),
		validation.Field(&o.Output, validation.When(!o.Replace,
			validation.Required.Error("an output path is required unless replace is set"))),
		validation.Field(&o.Count, validation.Min(0)),
	)
}

// Destination returns the path the result is written to: Input when Replace
// is set, Output otherwise.
func (o Options) Destination() string {
	if o.Replace {
		return o.Input
	}
	return o.Output
}
