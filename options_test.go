package xmlmock

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		opts        Options
		expectError bool
	}{
		{opts: Options{Input: "in.xml", Output: "out.xml"}, expectError: false},
		{opts: Options{Input: "in.xml", Replace: true}, expectError: false},
		{opts: Options{Input: "in.xml"}, expectError: true},
		{opts: Options{Output: "out.xml"}, expectError: true},
		{opts: Options{}, expectError: true},
		{opts: Options{Input: "in.xml", Output: "out.xml", Count: -1}, expectError: true},
		{opts: Options{Input: "in.xml", Output: "out.xml", Count: 0}, expectError: false},
		{opts: Options{Input: "in.xml", Replace: true, Node: "item", Count: 10}, expectError: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%+v", tt.opts), func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestOptionsDestination(t *testing.T) {
	require.Equal(t, "out.xml", Options{Input: "in.xml", Output: "out.xml"}.Destination())
	require.Equal(t, "in.xml", Options{Input: "in.xml", Output: "out.xml", Replace: true}.Destination())
	require.Equal(t, "in.xml", Options{Input: "in.xml", Replace: true}.Destination())
}
