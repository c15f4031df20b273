package publishers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownType is returned for a publisher entry whose type has no builder.
var ErrUnknownType = errors.New("unknown publisher type")

// Builder turns one validated config entry into a live sink.
type Builder func(ctx context.Context, cfg PublisherConfig, log Logger) (Publisher, error)

// Registry maps publisher types to builders.
type Registry interface {
	Register(typ string, builder Builder)
	PublisherFor(ctx context.Context, cfg PublisherConfig, log Logger) (Publisher, error)
	Types() []string
}

type builderTable struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry seeded with builders. Type names are
// case-insensitive.
func NewRegistry(builders map[string]Builder) Registry {
	t := &builderTable{builders: make(map[string]Builder, len(builders))}
	for typ, b := range builders {
		t.Register(typ, b)
	}
	return t
}

// DefaultRegistry knows every sink this module ships.
func DefaultRegistry() Registry {
	return NewRegistry(map[string]Builder{
		TypeHTTP:      newHTTPPublisher,
		TypeSQS:       newSQSPublisher,
		TypeSNS:       newSNSPublisher,
		TypeGCPPubSub: newGCPPubSubPublisher,
	})
}

func normalizeType(typ string) string { return strings.ToLower(strings.TrimSpace(typ)) }

func (t *builderTable) Register(typ string, builder Builder) {
	typ = normalizeType(typ)
	if typ == "" || builder == nil {
		return
	}
	t.mu.Lock()
	t.builders[typ] = builder
	t.mu.Unlock()
}

func (t *builderTable) Types() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.builders))
	for typ := range t.builders {
		out = append(out, typ)
	}
	slices.Sort(out)
	return out
}

func (t *builderTable) PublisherFor(ctx context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	typ := normalizeType(cfg.Type)
	if typ == "" {
		return nil, fmt.Errorf("publisher %q has no type configured", cfg.ID)
	}
	t.mu.RLock()
	builder := t.builders[typ]
	t.mu.RUnlock()
	if builder == nil {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownType, cfg.Type, strings.Join(t.Types(), ", "))
	}
	return builder(ctx, cfg, orDiscard(log))
}

// BuildAll builds a sink per config entry. On failure the sinks built so far
// are closed and the error names the offending entry.
func BuildAll(ctx context.Context, reg Registry, cfgs []PublisherConfig, log Logger) ([]Publisher, error) {
	if reg == nil || len(cfgs) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	pubs := make([]Publisher, 0, len(cfgs))
	for _, cfg := range cfgs {
		pub, err := reg.PublisherFor(ctx, cfg, log)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("publisher %q: %w", cfg.ID, err), closeAll(pubs))
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}
