package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	testCases := []struct {
		in     string
		expect string
	}{
		{in: "  Bad Boys for Life \n", expect: "Bad Boys for Life"},
		{in: "The\n   King's\tSpeech", expect: "The King's Speech"},
		{in: "$135,561,888", expect: "$135,561,888"},
		{in: "", expect: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expect, NormalizeText(test.in))
	}
}

func TestTexts(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table><tr>
			<td class="c"><a href="/x"> Avatar </a></td>
			<td class="c">  <b>2009</b></td>
		</tr></table>`))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"Avatar", "2009"}, Texts(doc.Find("td.c")))
}
