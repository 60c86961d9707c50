package api

import (
	"sort"

	"github.com/guestmatch/guestmatch/internal/source"
	"github.com/guestmatch/guestmatch/pkg/roster"
)

// Event is one served roster.
type Event struct {
	Slug   string
	Name   string
	Origin string
	Roster *roster.Roster
}

// Registry maps event slugs to their rosters. It is filled once at startup
// and only read afterwards, so it needs no locking.
type Registry struct {
	bySlug map[string]*Event
	slugs  []string
}

// NewRegistry builds a registry from explicit events.
func NewRegistry(events ...*Event) *Registry {
	reg := &Registry{bySlug: make(map[string]*Event, len(events))}
	for _, ev := range events {
		if _, dup := reg.bySlug[ev.Slug]; dup {
			continue
		}
		reg.bySlug[ev.Slug] = ev
		reg.slugs = append(reg.slugs, ev.Slug)
	}
	sort.Strings(reg.slugs)
	return reg
}

// RegistryFromLoaded adapts the result of source.LoadAll.
func RegistryFromLoaded(loaded map[string]*source.Loaded) *Registry {
	events := make([]*Event, 0, len(loaded))
	for slug, l := range loaded {
		name := l.Event.Name
		if name == "" {
			name = slug
		}
		events = append(events, &Event{Slug: slug, Name: name, Origin: l.Origin, Roster: l.Roster})
	}
	return NewRegistry(events...)
}

// Get returns the event with the given slug, or nil.
func (reg *Registry) Get(slug string) *Event {
	return reg.bySlug[slug]
}

// List returns events ordered by slug.
func (reg *Registry) List() []*Event {
	out := make([]*Event, 0, len(reg.slugs))
	for _, s := range reg.slugs {
		out = append(out, reg.bySlug[s])
	}
	return out
}
