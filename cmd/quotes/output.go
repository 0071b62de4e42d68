package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// maxQuoteWidth truncates quote text in table output.
const maxQuoteWidth = 60

func (a *app) printQuotes(quotes []*domain.Quote) error {
	if a.output == outputJSON {
		out := make([]*dto.QuoteResponse, 0, len(quotes))
		for _, q := range quotes {
			out = append(out, dto.ToQuoteResponse(q))
		}

		return writeJSON(a.out, out)
	}

	if len(quotes) == 0 {
		_, err := fmt.Fprintln(a.out, "No quotes found.")
		return err
	}

	if err := writeTable(a.out, quotes); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "\nTotal: %d\n", len(quotes))

	return err
}

func (a *app) printQuote(q *domain.Quote) error {
	if a.output == outputJSON {
		return writeJSON(a.out, dto.ToQuoteResponse(q))
	}

	return writeTable(a.out, []*domain.Quote{q})
}

func (a *app) printDeleted(id string) error {
	if a.output == outputJSON {
		return writeJSON(a.out, struct {
			ID      string `json:"id"`
			Deleted bool   `json:"deleted"`
		}{ID: id, Deleted: true})
	}

	_, err := fmt.Fprintf(a.out, "Deleted quote %s\n", id)

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeTable aligns the quotes into columns and renders the header in bold
// when w is a terminal.
func writeTable(w io.Writer, quotes []*domain.Quote) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tQUOTE\tQUOTER\tSOURCE\tLIKES")
	for _, q := range quotes {
		source := "-"
		if q.Source != nil {
			source = *q.Source
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			q.ID, truncate(q.Text, maxQuoteWidth), q.Quoter, source, strconv.FormatInt(q.Likes, 10))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	header, rows, _ := strings.Cut(sb.String(), "\n")
	bold := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	_, err := fmt.Fprintf(w, "%s\n%s", bold.Render(header), rows)

	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-3]) + "..."
}

// notify prints err as one line on w.
func notify(w io.Writer, err error) {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9"))

	_, _ = fmt.Fprintln(w, style.Render("Error: "+msg))
}
