package supplier

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parsePage(t *testing.T, page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestExtractQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		page     string
		expected int
	}{
		{
			name:     "label and quantity in one element",
			page:     `<html><body><div>Available Stock: 109 Meters</div></body></html>`,
			expected: 109,
		},
		{
			name:     "case and whitespace variations",
			page:     "<div>AVAILABLE\n\tSTOCK   7</div>",
			expected: 7,
		},
		{
			name: "quantity in sibling value element",
			page: `<div class="detail">
				<span class="title">Available Stock</span>
				<span class="value">42 Meters</span>
			</div>`,
			expected: 42,
		},
		{
			name:     "quantity as loose text after a bold label",
			page:     `<p><b>Available Stock</b>: 16</p>`,
			expected: 16,
		},
		{
			name: "first label occurrence wins",
			page: `<div>
				<p>Available Stock: 3</p>
				<p>Available Stock: 99</p>
			</div>`,
			expected: 3,
		},
		{
			name: "unrelated numbers before the label are ignored",
			page: `<div>
				<p>Price: 250 USD</p>
				<p>Available Stock: 12</p>
			</div>`,
			expected: 12,
		},
		{
			name:     "zero quantity",
			page:     `<div>Available Stock: 0</div>`,
			expected: 0,
		},
	}

	extractor := NewLabelExtractor(DefaultLabel)
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			quantity, err := extractor.ExtractQuantity(parsePage(t, test.page))
			require.NoError(t, err)
			require.Equal(t, test.expected, quantity)
		})
	}
}

func TestExtractQuantityNotFound(t *testing.T) {
	extractor := NewLabelExtractor(DefaultLabel)

	pages := []string{
		`<html><body><p>Out of season</p></body></html>`,
		`<div>In Stock: 12</div>`,
		`<html><body></body></html>`,
	}
	for _, page := range pages {
		_, err := extractor.ExtractQuantity(parsePage(t, page))
		require.True(t, errors.Is(err, ErrStockNotFound), page)
	}
}

func TestExtractQuantityUnparsable(t *testing.T) {
	extractor := NewLabelExtractor(DefaultLabel)

	pages := []string{
		`<div>Available Stock: contact us</div>`,
		`<div><span class="title">Available Stock</span><span class="value">plenty</span></div>`,
	}
	for _, page := range pages {
		_, err := extractor.ExtractQuantity(parsePage(t, page))
		require.True(t, errors.Is(err, ErrStockUnparsable), page)
	}
}

func TestCustomLabel(t *testing.T) {
	extractor := NewLabelExtractor("Verfügbarer Bestand")

	quantity, err := extractor.ExtractQuantity(parsePage(
		t, `<div>Verfügbarer Bestand: 33</div>`,
	))
	require.NoError(t, err)
	require.Equal(t, 33, quantity)

	_, err = extractor.ExtractQuantity(parsePage(
		t, `<div>Available Stock: 33</div>`,
	))
	require.True(t, errors.Is(err, ErrStockNotFound))
}
