package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fontgen/internal/catalog"
	"github.com/pdiddy/fontgen/internal/jsonfmt"
	"github.com/pdiddy/fontgen/pkg/types"
)

const defaultCatalogPath = "data/catalog.db"

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the variable-font catalog",
	Long: `Catalog lists the families indexed by "fontgen variable --catalog", optionally
filtered to those with a given axis tag (wght, wdth, opsz, ...).`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("db", defaultCatalogPath, "SQLite catalog path")
	catalogCmd.Flags().String("axis", "", "only list families with this axis tag")
	catalogCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	axis, _ := cmd.Flags().GetString("axis")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var fonts []types.VariableFont
	if axis != "" {
		fonts, err = store.ByAxis(cmd.Context(), axis)
	} else {
		fonts, err = store.All(cmd.Context())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if fonts == nil {
			fonts = []types.VariableFont{}
		}
		data, err := jsonfmt.Marshal(fonts)
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, f := range fonts {
		fmt.Fprintf(out, "%-32s %-32s %s\n", f.ID, f.Family, formatAxes(f.Axes))
	}
	return nil
}

// formatAxes renders axes as "opsz 8-144, wght 100-1000" in tag order.
func formatAxes(axes map[string]types.AxisRange) string {
	tags := make([]string, 0, len(axes))
	for tag := range axes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = fmt.Sprintf("%s %s-%s", tag, axes[tag].Min, axes[tag].Max)
	}
	return strings.Join(parts, ", ")
}
