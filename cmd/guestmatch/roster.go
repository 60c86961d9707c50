package main

import (
	"context"
	"fmt"
	"os"

	"github.com/guestmatch/guestmatch/internal/source"
	"github.com/guestmatch/guestmatch/pkg/config"
	"github.com/guestmatch/guestmatch/pkg/roster"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		path = config.FindConfigFile(cwd)
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// selectEvent picks the event named by slug, or the first configured one.
// A --roster override replaces the event's source.
func selectEvent(cfg *config.Config, slug, rosterURI string) (config.EventConfig, error) {
	var ev config.EventConfig
	switch {
	case slug == "" && len(cfg.Events) > 0:
		ev = cfg.Events[0]
	case slug == "":
		ev = config.EventConfig{Slug: config.DefaultEventSlug}
	default:
		found := false
		for _, e := range cfg.Events {
			if e.Slug == slug {
				ev, found = e, true
				break
			}
		}
		if !found && rosterURI == "" {
			return config.EventConfig{}, fmt.Errorf("unknown event %q", slug)
		}
		if !found {
			ev = config.EventConfig{Slug: slug}
		}
	}
	if rosterURI != "" {
		ev.Source = rosterURI
	}
	return ev, nil
}

func openRoster(ctx context.Context, g *globalOpts) (*config.Config, *roster.Roster, error) {
	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	ev, err := selectEvent(cfg, g.event, g.roster)
	if err != nil {
		return nil, nil, err
	}

	src, err := source.Open(ctx, ev.Source, ev.Slug, source.OptionsFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	r, err := src.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading roster for %s: %w", ev.Slug, err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d guests from %s\n", r.Len(), src)
	return cfg, r, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
