// Package site is the read side of the content document: it caches the
// current tree, tracks live updates off the event bus, and resolves text for
// page rendering with a three-step fallback chain. A path resolves from the
// live document first, then from the static fixture strings, and finally to
// the literal the caller supplied.
package site

import (
	"context"
	"sync"

	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/internal/events"
)

// ResolverOption configures the resolver at construction time.
type ResolverOption func(*Resolver)

// WithFixture overrides the static fallback strings.
func WithFixture(fixture *Fixture) ResolverOption {
	return func(r *Resolver) {
		if fixture != nil {
			r.fallbacks = fixture.Translations
		}
	}
}

// WithBus subscribes the resolver to content updates so cached pages follow
// admin saves without polling.
func WithBus(bus *events.Bus) ResolverOption {
	return func(r *Resolver) {
		if bus != nil {
			bus.Subscribe(r.onUpdate)
		}
	}
}

// Resolver serves content text to page rendering.
type Resolver struct {
	service   content.Service
	fallbacks map[string]map[string]string

	mu       sync.RWMutex
	doc      document.Document
	revision int64
}

// NewResolver builds a resolver over the content service. Without WithFixture
// the built-in fallback strings are used.
func NewResolver(service content.Service, opts ...ResolverOption) *Resolver {
	r := &Resolver{service: service}

	if fixture, err := DefaultFixture(); err == nil {
		r.fallbacks = fixture.Translations
	} else {
		r.fallbacks = map[string]map[string]string{}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) onUpdate(event events.ContentUpdated) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = event.Document
	r.revision = event.Revision
}

// Refresh reloads the cached document from the service.
func (r *Resolver) Refresh(ctx context.Context) error {
	view, err := r.service.GetDocument(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.doc = view.Document
	r.revision = view.Revision
	r.mu.Unlock()
	return nil
}

func (r *Resolver) current(ctx context.Context) (document.Document, error) {
	r.mu.RLock()
	doc := r.doc
	r.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc, nil
}

// Text resolves a dotted path for one language. An empty or missing document
// value falls back to the fixture strings, and then to the supplied literal.
func (r *Resolver) Text(ctx context.Context, path, language, fallback string) string {
	doc, err := r.current(ctx)
	if err == nil {
		if text, ok := doc.Text(path, language); ok && text != "" {
			return text
		}
	}
	if text := r.fixtureText(path, language); text != "" {
		return text
	}
	return fallback
}

// Image resolves a dotted path to an image URL, empty when unset.
func (r *Resolver) Image(ctx context.Context, path string) string {
	doc, err := r.current(ctx)
	if err != nil {
		return ""
	}
	text, _ := doc.Text(path, document.LanguageEN)
	return text
}

func (r *Resolver) fixtureText(path, language string) string {
	if table, ok := r.fallbacks[language]; ok {
		if text, ok := table[path]; ok {
			return text
		}
	}
	if language == document.LanguageEN {
		return ""
	}
	if table, ok := r.fallbacks[document.LanguageEN]; ok {
		return table[path]
	}
	return ""
}

// Page returns a view over one page slice for a language.
func (r *Resolver) Page(ctx context.Context, key, language string) (*PageView, error) {
	doc, err := r.current(ctx)
	if err != nil {
		return nil, err
	}
	return &PageView{
		Key:      key,
		Language: language,
		page:     doc[key],
		resolver: r,
	}, nil
}

// PageView resolves fields relative to one page, the way templates consume
// content. A missing page yields a view that serves fixture strings and
// fallbacks only.
type PageView struct {
	Key      string
	Language string

	page     document.Page
	resolver *Resolver
}

// Text resolves section.field within the page.
func (v *PageView) Text(section, field, fallback string) string {
	if v.page != nil {
		if text, ok := v.page.Text(section+"."+field, v.Language); ok && text != "" {
			return text
		}
	}
	path := v.Key + "." + section + "." + field
	if text := v.resolver.fixtureText(path, v.Language); text != "" {
		return text
	}
	return fallback
}

// Image resolves section.field to an image URL, empty when unset.
func (v *PageView) Image(section, field string) string {
	if v.page == nil {
		return ""
	}
	text, _ := v.page.Text(section+"."+field, document.LanguageEN)
	return text
}

// Records returns the structured records stored at section.field.
func (v *PageView) Records(section, field string) []map[string]any {
	if v.page == nil {
		return nil
	}
	result := v.page.Lookup(section + "." + field)
	if !result.Found {
		return nil
	}
	return document.Records(result.Value)
}
