package modules

import (
	"context"
	"log"
	"sync"

	"alfredflow/workflow"
)

// Module defines the interface that all query modules must implement.
type Module interface {
	Name() string
	DefaultIconPath() string
	// ProcessQuery adds the module's results for query to wf. wf belongs to
	// this call alone; modules must not retain it.
	ProcessQuery(ctx context.Context, query string, wf *workflow.Workflow) error
}

// Fallback describes the placeholder item added when no module produced
// results for a non-empty query.
type Fallback struct {
	Title    string
	Subtitle string
	Icon     string
}

// RunOptions controls Run.
type RunOptions struct {
	Workflow    []workflow.Option
	DefaultIcon string
	NoResults   *Fallback
	Verbose     bool
}

// Run fans query out to every module concurrently, each filling its own
// Workflow, and merges the results in registration order. Modules that have
// not finished when ctx is done are dropped.
func Run(ctx context.Context, mods []Module, query string, opts RunOptions) *workflow.Workflow {
	partial := make([]*workflow.Workflow, len(mods))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, mod := range mods {
		wg.Add(1)
		go func(i int, m Module) {
			defer wg.Done()

			wf := workflow.New(opts.Workflow...)
			if err := m.ProcessQuery(ctx, query, wf); err != nil {
				log.Printf("Module '%s' failed for query '%s': %v", m.Name(), query, err)
				return
			}
			for _, it := range wf.Items() {
				if it.IconPath() != "" {
					continue
				}
				switch {
				case m.DefaultIconPath() != "":
					it.Icon(m.DefaultIconPath())
				case opts.DefaultIcon != "":
					it.Icon(opts.DefaultIcon)
				}
			}
			if opts.Verbose {
				log.Printf("Module '%s' produced %d results", m.Name(), wf.Len())
			}
			mu.Lock()
			partial[i] = wf
			mu.Unlock()
		}(i, mod)
	}

	waitChan := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitChan)
	}()

	select {
	case <-waitChan:
	case <-ctx.Done():
		log.Printf("Request processing timed out or was canceled for query: '%s', error: %v", query, ctx.Err())
	}

	mu.Lock()
	finished := make([]*workflow.Workflow, len(partial))
	copy(finished, partial)
	mu.Unlock()

	merged := workflow.New(opts.Workflow...)
	for _, wf := range finished {
		merged.Merge(wf)
	}

	if merged.Len() == 0 && query != "" && opts.NoResults != nil {
		merged.Result().
			Title(opts.NoResults.Title).
			Subtitle(opts.NoResults.Subtitle).
			Icon(opts.NoResults.Icon).
			Autocomplete(query).
			Valid(false)
	}
	return merged
}
