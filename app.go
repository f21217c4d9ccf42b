package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"alfredflow/config"
	"alfredflow/modules"
	"alfredflow/modules/bookmarks"
	"alfredflow/modules/calculator"
	"alfredflow/workflow"
)

// app holds the loaded config and the registered modules.
type app struct {
	cfg     *config.Config
	modules []modules.Module
	verbose bool
}

func newApp(cfg *config.Config, verbose bool) *app {
	a := &app{cfg: cfg, verbose: verbose}
	if cfg.Calculator.Enabled {
		a.modules = append(a.modules, calculator.NewCalculatorModule(cfg.Calculator.Icon))
	}
	if cfg.Bookmarks.Enabled {
		a.modules = append(a.modules, bookmarks.NewBookmarksModule(cfg.Bookmarks))
	}
	return a
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := config.LoadWithDefaults(flags.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("sort") {
		cfg.Output.SortDirection = flags.sort
		cfg.Output.Sorted = true
	}
	if f.Changed("sort-field") {
		cfg.Output.SortField = flags.sortField
	}
	if f.Changed("strict") {
		cfg.Output.Strict = flags.strict
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	a := newApp(cfg, flags.verbose)
	if a.verbose {
		log.Printf("Loaded %d modules", len(a.modules))
	}
	return a, nil
}

// render runs query through every module and returns the serialized document.
func (a *app) render(ctx context.Context, query string) ([]byte, error) {
	wf := modules.Run(ctx, a.modules, query, modules.RunOptions{
		Workflow:    a.cfg.Options(),
		DefaultIcon: a.cfg.NoResults.Icon,
		NoResults: &modules.Fallback{
			Title:    a.cfg.NoResults.Title,
			Subtitle: a.cfg.NoResults.Subtitle,
			Icon:     a.cfg.NoResults.Icon,
		},
		Verbose: a.verbose,
	})

	if a.cfg.Output.Sorted {
		dir := workflow.Direction(a.cfg.Output.SortDirection)
		if err := wf.Sort(dir, a.cfg.Output.SortField); err != nil {
			return nil, fmt.Errorf("sorting results: %w", err)
		}
	}
	return wf.MarshalJSON()
}

func (a *app) query(ctx context.Context, w io.Writer, query string) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.RequestTimeout)
	defer cancel()

	body, err := a.render(ctx, query)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(body)); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
