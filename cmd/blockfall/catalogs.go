package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs [name]",
	Short: "Show shape catalogs",
	Long: `Without arguments, lists the shape catalogs that can be selected with
the "catalog" config key. With a name, draws every shape of that catalog.

Examples:
  blockfall catalogs
  blockfall catalogs classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogs,
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		shapes, ok := engine.Catalog(args[0])
		if !ok {
			return fmt.Errorf("unknown catalog %q (have %s)", args[0], strings.Join(engine.CatalogNames(), ", "))
		}
		blocks := make([]string, 0, len(shapes))
		for _, s := range shapes {
			blocks = append(blocks, drawShape(s))
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Catalog", "Shapes", "Largest")
	for _, name := range engine.CatalogNames() {
		shapes, _ := engine.Catalog(name)
		largest := 0
		for _, s := range shapes {
			largest = max(largest, s.Size())
		}
		t.Row(name, strconv.Itoa(len(shapes)), fmt.Sprintf("%dx%d", largest, largest))
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

// drawShape renders one shape matrix with two glyphs per cell and a
// trailing gap column.
func drawShape(s engine.Shape) string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v > 0 {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("  ")
	}
	return sb.String()
}
