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

var whitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeText collapses runs of whitespace into a single space, removes
// non-printable characters and trims the result.
func NormalizeText(s string) string {
	s = whitespace.ReplaceAllString(s, " ")
	s = removeNonPrintable(s)
	return strings.TrimSpace(s)
}

// Texts returns the normalized text of every node in the selection,
// in document order.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, len(sel.Nodes))
	for i, n := range sel.Nodes {
		out[i] = NormalizeText(GetText(n))
	}
	return out
}
