package supplier

import (
	"errors"
	"regexp"
	"strings"

	"stocksync/lib/htmlutil"
	"stocksync/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	// the page has no element carrying the stock label
	ErrStockNotFound = errors.New("no stock label found on page")
	// a stock label exists but no quantity follows it
	ErrStockUnparsable = errors.New("stock label carries no quantity")
)

// Extractor pulls a stock quantity out of a parsed supplier page.
// Supplier markup has no schema, so the heuristic lives behind this
// interface where it can be swapped or tested against fixtures.
type Extractor interface {
	ExtractQuantity(doc *goquery.Document) (int, error)
}

const DefaultLabel = "Available Stock"

// LabelExtractor locates the innermost element whose text contains a
// label phrase and reads the first run of digits after the phrase,
// falling back to the element's next sibling.
type LabelExtractor struct {
	matcher string
	pattern *regexp.Regexp
}

func NewLabelExtractor(label string) LabelExtractor {
	if label == "" {
		label = DefaultLabel
	}
	words := strings.Fields(strings.ToLower(label))
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return LabelExtractor{
		matcher: textutil.NormalizeLabel(label),
		pattern: regexp.MustCompile(`(?i)` + strings.Join(words, `\s*`)),
	}
}

func (e LabelExtractor) ExtractQuantity(doc *goquery.Document) (int, error) {
	label := e.findLabel(doc)
	if label == nil {
		return 0, ErrStockNotFound
	}

	if n, ok := e.quantityAfterLabel(htmlutil.CleanText(label)); ok {
		return n, nil
	}
	// markup along the lines of <span class="title">label</span><span>12</span>
	if n, ok := textutil.FirstInteger(htmlutil.CleanText(label.Next())); ok {
		return n, nil
	}
	// markup along the lines of <b>label</b>: 12, where the quantity is
	// loose text inside the label's parent
	if n, ok := e.quantityAfterLabel(htmlutil.CleanText(label.Parent())); ok {
		return n, nil
	}
	return 0, ErrStockUnparsable
}

// findLabel returns the first element in document order that contains
// the label phrase but has no child containing it, i.e. the innermost
// element around the first occurrence of the phrase.
func (e LabelExtractor) findLabel(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("body *").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !e.matches(sel) {
			return true
		}
		childMatch := false
		sel.Children().Each(func(_ int, child *goquery.Selection) {
			if e.matches(child) {
				childMatch = true
			}
		})
		if childMatch {
			return true
		}
		found = sel
		return false
	})
	return found
}

func (e LabelExtractor) matches(sel *goquery.Selection) bool {
	return strings.Contains(
		textutil.NormalizeLabel(htmlutil.CleanText(sel)),
		e.matcher,
	)
}

func (e LabelExtractor) quantityAfterLabel(text string) (int, bool) {
	loc := e.pattern.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}
	return textutil.FirstInteger(text[loc[1]:])
}
