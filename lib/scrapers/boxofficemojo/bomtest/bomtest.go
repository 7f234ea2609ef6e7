// Package bomtest renders listing pages shaped like the real site for tests.
package bomtest

import (
	"fmt"
	"html"
	"strings"
)

type Row struct {
	Year       string
	Name       string
	Gross      string
	Release    string
	Cumulative string
	Average    string
}

const header = `<!DOCTYPE html>
<html><body>
<div id="a-page">
<div class="a-section imdb-scroll-table-inner">
<table class="a-bordered a-horizontal-stripes a-size-base a-span12 mojo-body-table mojo-table-annotated">
<tr>
<th class="a-text-left mojo-field-type-year">Year</th>
<th class="a-text-right mojo-field-type-money">Cumulative Gross</th>
<th class="a-text-right mojo-field-type-money">Average Gross</th>
<th class="a-text-right mojo-field-type-positive_integer">Releases</th>
<th class="a-text-left mojo-field-type-release">#1 Release</th>
<th class="a-text-right mojo-field-type-money">Gross</th>
</tr>
`

const footer = `</table>
</div>
</div>
</body></html>
`

// Page renders a listing page containing `rows` in order.
func Page(rows ...Row) string {
	var b strings.Builder
	b.WriteString(header)
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr>
<td class="a-text-left mojo-header-column mojo-truncate mojo-field-type-year mojo-sort-column"><a class="a-link-normal" href="/year/%[1]s/">%[1]s</a></td>
<td class="a-text-right mojo-field-type-money">%[2]s</td>
<td class="a-text-right mojo-field-type-money">%[3]s</td>
<td class="a-text-right mojo-field-type-positive_integer">%[4]s</td>
<td class="a-text-left mojo-field-type-release mojo-cell-wide"><a class="a-link-normal" href="/release/rl1/">%[5]s</a></td>
<td class="a-text-right mojo-field-type-money">%[6]s</td>
</tr>
`,
			html.EscapeString(r.Year),
			html.EscapeString(r.Cumulative),
			html.EscapeString(r.Average),
			html.EscapeString(r.Release),
			html.EscapeString(r.Name),
			html.EscapeString(r.Gross),
		)
	}
	b.WriteString(footer)
	return b.String()
}
