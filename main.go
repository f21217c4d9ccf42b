// Command alfredflow answers launcher queries with a script filter result
// document, either once per invocation or from a long-running HTTP receiver.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	sort       string
	sortField  string
	strict     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "alfredflow [query]",
		Short: "Launcher script filter backed by calculator and bookmark modules",
		Long: `alfredflow evaluates a launcher query with every enabled module and
prints the result document ({"items":[...]}) to stdout.

Run "alfredflow serve" to answer queries over HTTP instead.`,
		Example: `alfredflow "2 * 21"
alfredflow --sort desc --sort-field uid docs
alfredflow -- -5+3`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			return a.query(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&flags.sort, "sort", "", "sort results: asc or desc")
	pf.StringVar(&flags.sortField, "sort-field", "", "field to sort on (default title)")
	pf.BoolVar(&flags.strict, "strict", false, "reject unknown sort and filter fields")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log module activity to stderr")

	// Everything after the first query word belongs to the query, so
	// "10 - -3" is not read as a flag.
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(newServeCmd(flags))
	return cmd
}
