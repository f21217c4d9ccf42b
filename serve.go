package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer queries over HTTP at GET /?q=<query>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), a)
		},
	}
}

// server is the HTTP receiver. Rendered documents are cached per query.
type server struct {
	app     *app
	cache   *cache.Cache
	limiter *rate.Limiter
}

func newServer(a *app) *server {
	s := &server{app: a}
	if ttl := a.cfg.Server.CacheTTL; ttl > 0 {
		s.cache = cache.New(ttl, ttl*2)
	}
	if a.cfg.Server.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(a.cfg.Server.RateLimit), a.cfg.Server.RateBurst)
	}
	return s
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleQuery)
	return mux
}

func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if s.limiter != nil && !s.limiter.Allow() {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	query := r.URL.Query().Get("q")

	body, ok := s.cached(query)
	if !ok {
		ctx, cancel := context.WithTimeout(r.Context(), s.app.cfg.Server.RequestTimeout)
		defer cancel()

		var err error
		body, err = s.app.render(ctx, query)
		if err != nil {
			log.Printf("Error rendering results for query '%s': %v", query, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if s.cache != nil {
			s.cache.Set(query, body, cache.DefaultExpiration)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

func (s *server) cached(query string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(query)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

func runServer(ctx context.Context, a *app) error {
	cfg := a.cfg.Server
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newServer(a).routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP receiver listening on %s at path /", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down HTTP receiver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
