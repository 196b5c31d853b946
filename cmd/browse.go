package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/dialog"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio interactively in the terminal",
	Long:  `Pick a category, reveal more domains a page at a time, and open a domain to see its price, description and purchase link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		err = runBrowse(cmd.OutOrStdout(), s)
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		return err
	},
}

const (
	actionLoadMore = "» Load more"
	actionCategory = "« Change category"
	actionQuit     = "× Quit"
)

func runBrowse(out io.Writer, s *site) error {
	ctrl := browse.New(s.index, s.cfg.Catalog.PageSize)

categories:
	for {
		category, ok, err := pickCategory(s)
		if err != nil || !ok {
			return err
		}
		ctrl.SetFilter(category)

		for {
			items := ctrl.VisibleItems()
			choices := make([]string, 0, len(items)+3)
			for _, it := range items {
				choices = append(choices, it.DisplayName())
			}
			if ctrl.HasMore() {
				choices = append(choices, actionLoadMore)
			}
			choices = append(choices, actionCategory, actionQuit)

			prompt := promptui.Select{
				Label: fmt.Sprintf("%s: %d of %d", s.labels[category], ctrl.Revealed(), ctrl.MatchCount()),
				Items: choices,
				Size:  12,
			}
			idx, choice, err := prompt.Run()
			if err != nil {
				return err
			}

			switch {
			case idx < len(items):
				printDetail(out, s.renderer.Detail(items[idx]))
			case choice == actionLoadMore:
				ctrl.LoadMore()
			case choice == actionCategory:
				continue categories
			default:
				return nil
			}
		}
	}
}

// pickCategory reports false when the user chose to quit.
func pickCategory(s *site) (string, bool, error) {
	keys := append([]string{catalog.All}, s.index.Categories()...)
	choices := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		choices = append(choices, fmt.Sprintf("%s (%d)", s.labels[k], s.index.Count(k)))
	}
	choices = append(choices, actionQuit)

	prompt := promptui.Select{
		Label: "Category",
		Items: choices,
		Size:  len(choices),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", false, err
	}
	if idx == len(keys) {
		return "", false, nil
	}
	return keys[idx], true, nil
}

func printDetail(out io.Writer, d dialog.Detail) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, d.Display)
	if d.Display != d.Name {
		fmt.Fprintf(out, "  (%s)\n", d.Name)
	}
	fmt.Fprintf(out, "  Price: %s\n", d.Price)
	fmt.Fprintf(out, "  %s\n", d.Description)
	fmt.Fprintf(out, "  Next: %s\n\n", d.NextURL)
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
