package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/normalize"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/version"
)

func newLookupCmd(e *env) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up the latest version of one program",
		Example: `  sga-cli lookup "Google Chrome"
  sga-cli lookup 7-Zip --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			ctx, stop := interruptContext(cmd.Context())
			defer stop()

			match, err := e.lookup.Lookup(ctx, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(match)
			}
			if !match.Found {
				fmt.Fprintln(out, i18n.T("lookup.not_found", map[string]interface{}{
					"Name":  name,
					"Error": match.Error,
				}))
				return nil
			}
			fmt.Fprintf(out, "%s %s (%s: %s)\n", match.Name, match.Version, match.Source, match.Identifier)
			if match.DownloadURL != "" {
				fmt.Fprintf(out, "  download: %s\n", match.DownloadURL)
			}
			if match.ProjectURL != "" {
				fmt.Fprintf(out, "  project:  %s\n", match.ProjectURL)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the match as JSON")
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <name>...",
		Short: "Show the lookup key derived from each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, normalize.Normalize(name))
			}
			return nil
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <current> <latest>",
		Short: "Compare an installed version with the latest one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := version.Compare(args[0], args[1]).String()
			if kind := version.UpdateKind(args[0], args[1]); kind != "" {
				result += " (" + kind + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newSuggestCmd(e *env) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <name>",
		Short: "Suggest known catalog keys that resemble a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			registry := e.lookup.Registry()
			suggestions := registry.Suggest(name, limit)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("suggest.none", map[string]interface{}{"Name": name}))
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s.Key)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of suggestions")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		// No configuration is needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sga-cli %s\n", Version)
		},
	}
}
