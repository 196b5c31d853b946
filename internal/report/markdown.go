package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// WriteMarkdown writes r as a markdown document: a summary table, the
// visible domains, and the category distribution as a mermaid pie chart.
func WriteMarkdown(w io.Writer, r *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Domain Portfolio")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Page", "Shown", "Total"},
		Rows: [][]string{
			{r.Label, strconv.Itoa(r.Page), strconv.Itoa(r.Revealed), strconv.Itoa(r.MatchCount)},
		},
	})
	md.PlainText("")

	md.H2("Domains")
	md.PlainText("")
	if len(r.Domains) == 0 {
		md.PlainText("No domains match this category.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(r.Domains))
		for i, d := range r.Domains {
			name := "`" + d.Name + "`"
			if d.Display != d.Name {
				name += " (" + d.Display + ")"
			}
			rows[i] = []string{strconv.Itoa(i + 1), name, d.TLD, d.Price}
		}
		md.Table(markdown.TableSet{
			Header: []string{"#", "Domain", "TLD", "Price"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if r.HasMore {
		md.Note(fmt.Sprintf("%d more domains in %s. Run again with --pages %d to see them.", r.MatchCount-r.Revealed, r.Label, r.Page+1))
		md.PlainText("")
	}

	writeDistribution(md, r)
	return md.Build()
}

func writeDistribution(md *markdown.Markdown, r *Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Domains per Category"),
		piechart.WithShowData(true),
	)
	n := 0
	for _, c := range r.Categories {
		if c.Count > 0 {
			chart.LabelAndIntValue(c.Label, uint64(c.Count))
			n++
		}
	}
	if n == 0 {
		return
	}

	md.H2("Categories")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
