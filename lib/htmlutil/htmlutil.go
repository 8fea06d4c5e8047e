package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText returns the rendered text of a selection with non-printable
// characters dropped and runs of whitespace collapsed to one space.
func CleanText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return normalize(buffer.String())
}

// OwnText is CleanText restricted to the selection's direct text nodes,
// ignoring text inside child elements.
func OwnText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		child := n.FirstChild
		for child != nil {
			if child.Type == html.TextNode {
				buffer.WriteString(child.Data)
			}
			child = child.NextSibling
		}
	}
	return normalize(buffer.String())
}

func normalize(text string) string {
	// collapse whitespace before stripping non-printables so newlines
	// between words do not glue them together
	text = innerWhitespace.ReplaceAllString(text, " ")
	text = removeNonPrintable(text)
	return strings.Trim(text, " ")
}
