package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "First Quarter", expected: "firstquarter"},
		{name: "  first\tquarter \n", expected: "firstquarter"},
		{name: "JANUARY", expected: "january"},
		{name: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeName(test.name))
	}
}
