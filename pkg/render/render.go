// Package render presents collected models as a terminal table or JSON file.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/s2005/github-models-scraper/pkg/models"
)

// descriptionLimit caps the description column so one verbose listing does
// not blow up the table width.
const descriptionLimit = 100

// Table writes the models as a bordered table.
func Table(w io.Writer, ms []models.Model) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Task", "Model Family", "Description", "Page")

	for _, m := range ms {
		t.Row(m.Name, m.Task, m.ModelFamily, truncate(m.Description, descriptionLimit), strconv.Itoa(m.Page))
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// WriteJSON persists the models as a pretty-printed JSON array.
func WriteJSON(path string, ms []models.Model) error {
	data, err := json.MarshalIndent(ms, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal models: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	return nil
}

// truncate shortens s to limit runes, appending "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
