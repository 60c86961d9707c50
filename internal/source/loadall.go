package source

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/guestmatch/guestmatch/pkg/config"
	"github.com/guestmatch/guestmatch/pkg/roster"
)

// Loaded is an event with its roster, ready to serve.
type Loaded struct {
	Event  config.EventConfig
	Roster *roster.Roster
	Origin string
}

// LoadAll loads every event's roster concurrently. It fails as a whole if
// any single event cannot be loaded.
func LoadAll(ctx context.Context, events []config.EventConfig, opts Options) (map[string]*Loaded, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*Loaded, len(events))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, ev := range events {
		g.Go(func() error {
			src, err := Open(ctx, ev.Source, ev.Slug, opts)
			if err != nil {
				return fmt.Errorf("event %s: %w", ev.Slug, err)
			}
			defer src.Close()

			r, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("event %s: %w", ev.Slug, err)
			}

			mu.Lock()
			out[ev.Slug] = &Loaded{Event: ev, Roster: r, Origin: src.String()}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// OptionsFromConfig maps the config file's backend sections onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		S3: S3Config{
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		},
		DatabaseURL: cfg.Database.URL,
	}
}
