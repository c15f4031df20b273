package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"gopkg.in/yaml.v3"
)

// Package queries loads the set of Hyperion queries a watcher polls (YAML/JSON).

// Query is one watched endpoint invocation.
type Query struct {
	ID       string         `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Endpoint string         `json:"endpoint" yaml:"endpoint"`
	Params   map[string]any `json:"params" yaml:"params"`
	Enabled  *bool          `json:"enabled" yaml:"enabled"`
}

type registryFile struct {
	Queries []Query `json:"queries" yaml:"queries"`
}

// Registry holds the validated queries in file order.
type Registry struct {
	mu      sync.RWMutex
	queries []Query
	idx     map[string]Query
}

// LoadRegistry loads the query registry from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("queries file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open queries file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}

	reg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return NewRegistry(reg.Queries)
}

// NewRegistry sanitizes and validates queries against the endpoint table.
func NewRegistry(qs []Query) (*Registry, error) {
	if len(qs) == 0 {
		return nil, errors.New("queries file contains no queries entries")
	}

	r := &Registry{
		queries: make([]Query, len(qs)),
		idx:     make(map[string]Query, len(qs)),
	}
	for i := range qs {
		q := sanitizeQuery(qs[i])
		if err := validateQuery(q); err != nil {
			return nil, fmt.Errorf("queries[%d]: %w", i, err)
		}
		if _, exists := r.idx[q.ID]; exists {
			return nil, fmt.Errorf("duplicate query id %q", q.ID)
		}
		r.queries[i] = q
		r.idx[q.ID] = q
	}
	return r, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if reg, err := unmarshalRegistry(d.name, data, d.fn); err == nil {
			return reg, nil
		}
	}

	return registryFile{}, errors.New("queries file format not recognized (expected YAML or JSON)")
}

type unmarshalFn func([]byte, any) error

func unmarshalRegistry(name string, data []byte, fn unmarshalFn) (registryFile, error) {
	var reg registryFile
	if err := fn(data, &reg); err != nil {
		return registryFile{}, fmt.Errorf("decode %s queries: %w", name, err)
	}
	return reg, nil
}

func sanitizeQuery(q Query) Query {
	q.ID = strings.TrimSpace(q.ID)
	q.Name = strings.TrimSpace(q.Name)
	q.Endpoint = strings.TrimSpace(q.Endpoint)
	if q.Name == "" {
		q.Name = q.ID
	}

	params := make(map[string]any, len(q.Params))
	for k, v := range q.Params {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		params[key] = v
	}
	q.Params = params

	if q.Enabled == nil {
		def := true
		q.Enabled = &def
	}
	return q
}

func validateQuery(q Query) error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	if q.Endpoint == "" {
		return fmt.Errorf("endpoint is required for query %q", q.ID)
	}
	ep, ok := hyperion.LookupEndpoint(q.Endpoint)
	if !ok {
		return fmt.Errorf("unknown endpoint %q for query %q", q.Endpoint, q.ID)
	}
	if err := hyperion.ValidateArgs(ep, q.Args()); err != nil {
		return fmt.Errorf("query %q: %w", q.ID, err)
	}
	return nil
}

// Args returns the query parameters as client call arguments.
func (q Query) Args() hyperion.Args {
	args := make(hyperion.Args, len(q.Params))
	for k, v := range q.Params {
		args[k] = v
	}
	return args
}

// EnabledValue returns enabled flag defaulting to true.
func (q Query) EnabledValue() bool {
	if q.Enabled == nil {
		return true
	}
	return *q.Enabled
}

// All returns every configured query.
func (r *Registry) All() []Query {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Query, len(r.queries))
	copy(out, r.queries)
	return out
}

// Enabled returns the queries that should be polled.
func (r *Registry) Enabled() []Query {
	all := r.All()
	out := make([]Query, 0, len(all))
	for _, q := range all {
		if q.EnabledValue() {
			out = append(out, q)
		}
	}
	return out
}

// ByID returns the query with the given id, if loaded.
func (r *Registry) ByID(id string) (Query, bool) {
	if r == nil {
		return Query{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Query{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.idx[id]
	return q, ok
}
