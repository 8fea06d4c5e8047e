package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Available Stock", "availablestock"},
		{"  AVAILABLE\n\tStock  ", "availablestock"},
		{"available   stock:", "availablestock:"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeLabel(test.input))
	}
}

func TestMatchLabel(t *testing.T) {
	matchers := []string{"availablestock"}

	require.True(t, MatchLabel("Available Stock: 12", matchers))
	require.True(t, MatchLabel("AVAILABLE  STOCK", matchers))
	require.False(t, MatchLabel("In Stock", matchers))
}

func TestFirstInteger(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"109 Meters", 109, true},
		{"about 40", 40, true},
		{"12.5", 12, true},
		{"0", 0, true},
		{"none left", 0, false},
		{"", 0, false},
	}

	for _, test := range testCases {
		n, ok := FirstInteger(test.input)
		require.Equal(t, test.ok, ok, test.input)
		require.Equal(t, test.expected, n, test.input)
	}
}

func TestIntegerAfter(t *testing.T) {
	testCases := []struct {
		input    string
		phrase   string
		expected int
		ok       bool
	}{
		{"Available Stock: 109 Meters", "available stock", 109, true},
		{"Item 4 - Available Stock: 7", "Available Stock", 7, true},
		{"Available Stock: none", "available stock", 0, false},
		{"Sold out", "available stock", 0, false},
	}

	for _, test := range testCases {
		n, ok := IntegerAfter(test.input, test.phrase)
		require.Equal(t, test.ok, ok, test.input)
		require.Equal(t, test.expected, n, test.input)
	}
}
