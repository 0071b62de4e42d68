package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [key=value ...]",
		Short: "List quotes, optionally filtered by exact field values",
		Long: `List quotes. Each key=value argument keeps only quotes whose field
equals the value exactly. Filterable keys are id, quote, quoter, source
and likes.`,
		Example: `  quotes list
  quotes list quoter=Joker likes=3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilterArgs(args)
			if err != nil {
				return err
			}

			quotes, err := a.api.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return a.printQuotes(quotes)
		},
	}
}

// parseFilterArgs turns key=value arguments into a filter with the same
// rules the API applies to query parameters.
func parseFilterArgs(args []string) (domain.Filter, error) {
	raw := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return domain.Filter{}, fmt.Errorf("invalid filter %q, want key=value", arg)
		}
		raw[key] = append(raw[key], value)
	}

	return domain.ParseFilter(raw)
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.api.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printQuote(q)
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var in struct {
		quote  string
		quoter string
		source string
	}

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a quote",
		Example: `  quotes create --quote "Why so serious?" --quoter Joker --source "The Dark Knight"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nq := domain.NewQuote{Text: in.quote, Quoter: in.quoter}
			if cmd.Flags().Changed("source") {
				nq.Source = &in.source
			}

			q, err := a.api.Create(cmd.Context(), nq)
			if err != nil {
				return err
			}

			return a.printQuote(q)
		},
	}

	cmd.Flags().StringVar(&in.quote, "quote", "", "quote text (required)")
	cmd.Flags().StringVar(&in.quoter, "quoter", "", "who said it (required)")
	cmd.Flags().StringVar(&in.source, "source", "", "where it was said")
	_ = cmd.MarkFlagRequired("quote")
	_ = cmd.MarkFlagRequired("quoter")

	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var in domain.QuoteReplacement

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace every field of a quote",
		Long: `Replace a quote. Every field is required, so an edit never leaves a
field half-updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.api.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}

			return a.printQuote(q)
		},
	}

	cmd.Flags().StringVar(&in.Text, "quote", "", "quote text")
	cmd.Flags().StringVar(&in.Quoter, "quoter", "", "who said it")
	cmd.Flags().StringVar(&in.Source, "source", "", "where it was said")
	cmd.Flags().Int64Var(&in.Likes, "likes", 0, "like count")
	for _, name := range []string{"quote", "quoter", "source", "likes"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newLikeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like ID",
		Short: "Add one like to a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.api.Like(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printQuote(q)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			return a.printDeleted(args[0])
		},
	}
}
