package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText writes r as an aligned plain-text listing.
func WriteText(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "%s: showing %d of %d\n\n", r.Label, r.Revealed, r.MatchCount)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDOMAIN\tTLD\tPRICE")
	for i, d := range r.Domains {
		name := d.Name
		if d.Display != d.Name {
			name = fmt.Sprintf("%s (%s)", d.Name, d.Display)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, name, d.TLD, d.Price)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.HasMore {
		_, err := fmt.Fprintf(w, "\n%d more, use --pages %d\n", r.MatchCount-r.Revealed, r.Page+1)
		return err
	}
	return nil
}
