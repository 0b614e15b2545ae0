package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adfharrison1/go-items/pkg/domain"
	"github.com/adfharrison1/go-items/pkg/view"
)

var (
	viewSearch string
	viewSort   string
	viewOrder  string
	viewPage   int
	viewSize   int
)

var viewCmd = &cobra.Command{
	Use:   "view <items.json>",
	Short: "Print a filtered, sorted page of a JSON item file",
	Long:  "Read a JSON array of items (\"-\" for stdin) and print one page of the matching items.",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	defaults := domain.DefaultViewConfig()
	viewCmd.Flags().StringVarP(&viewSearch, "search", "s", "", "case-insensitive search over name and description")
	viewCmd.Flags().StringVar(&viewSort, "sort", defaults.SortField, "field to sort by (id, name, description, active)")
	viewCmd.Flags().StringVar(&viewOrder, "order", string(defaults.SortOrder), "sort order: asc or desc")
	viewCmd.Flags().IntVar(&viewPage, "page", defaults.Page, "page number, starting at 1")
	viewCmd.Flags().IntVar(&viewSize, "size", defaults.PageSize, "items per page")
}

func runView(cmd *cobra.Command, args []string) error {
	list, err := readItems(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	order, err := domain.ParseSortOrder(viewOrder)
	if err != nil {
		return err
	}
	cfg := domain.ViewConfig{
		SearchTerm: viewSearch,
		SortField:  viewSort,
		SortOrder:  order,
		Page:       viewPage,
		PageSize:   viewSize,
	}

	result, err := view.NewEngine(view.ItemSchema()).Apply(list, cfg)
	if err != nil {
		return err
	}
	return renderView(cmd.OutOrStdout(), result)
}

func readItems(stdin io.Reader, path string) ([]domain.Item, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open items file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var list []domain.Item
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}
	return list, nil
}

// renderView prints the page as a table followed by the page summary
func renderView(w io.Writer, result domain.ViewResult[domain.Item]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tACTIVE")
	for _, it := range result.Items {
		desc := it.Description
		if !it.HasDescription() {
			desc = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", it.ID, it.Name, strings.ReplaceAll(desc, "\n", " "), it.Active)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Page %d of %d\n", result.CurrentPage, max(result.TotalPages, 1))
	fmt.Fprintf(w, "Showing %d of %d\n", len(result.Items), result.TotalMatching)
	return nil
}
