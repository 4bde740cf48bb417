package kvargs

import (
	"fmt"
	"io"
	"strings"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

var usageHeaders = [...]string{"name", "type", "default value", "description"}

func (m *Manager) Usage() string {
	var sb strings.Builder
	m.WriteUsage(&sb)
	return sb.String()
}

// Writes the invocation syntax, and a table of the declared parameters. Every
// column is as wide as its widest cell or header.
func (m *Manager) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s arg0 arg1 ... opt0=value0 opt1=value1 ... -- ... (ignored args)\n\n", m.program)
	fmt.Fprintf(w, "  * Either '%s' triggers this help message.\n\n", strings.Join(HelpKeywords, "', '"))

	rows := make([][len(usageHeaders)]string, len(m.params))
	var widths [len(usageHeaders)]int
	for i, h := range usageHeaders {
		widths[i] = xstrings.Len(h)
	}
	for i := range iter.N(len(m.params)) {
		p := m.params[i]
		rows[i] = [...]string{p.name, p.typeName, p.defaultString(), p.desc}
		for j, cell := range rows[i] {
			if l := xstrings.Len(cell); l > widths[j] {
				widths[j] = l
			}
		}
	}

	header := "       " + formatCells(usageHeaders, widths)
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", xstrings.Len(header)-1))
	for i, row := range rows {
		fmt.Fprintf(w, "  %3d  %s\n", i+1, formatCells(row, widths))
	}
	if m.appendix != "" {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(m.appendix))
	}
}

func formatCells(cells [len(usageHeaders)]string, widths [len(usageHeaders)]int) string {
	var sb strings.Builder
	for i, c := range cells {
		if i != 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "| %-*s", widths[i], c)
	}
	return sb.String()
}

func formatValue(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprint(v)
}
