package queries

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadRegistryFromYAML(t *testing.T) {
	path := writeFile(t, "queries.yaml", `
queries:
  - id: " creator "
    endpoint: get_creator
    params:
      account: " eosio.token "
  - id: resources
    name: Resource usage
    endpoint: get_resource_usage
    enabled: false
    params:
      code: eosio.token
      action: transfer
  - id: voters
    endpoint: get_voters
    params:
      producer: eosriobrazil
      limit: 25
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := len(reg.All()); got != 3 {
		t.Fatalf("expected 3 queries, got %d", got)
	}

	enabled := reg.Enabled()
	if len(enabled) != 2 || enabled[0].ID != "creator" || enabled[1].ID != "voters" {
		t.Fatalf("unexpected enabled queries %#v", enabled)
	}

	creator, ok := reg.ByID("creator")
	if !ok || creator.Name != "creator" || creator.Params["account"] != "eosio.token" {
		t.Fatalf("query not sanitized: %#v", creator)
	}

	voters, _ := reg.ByID("voters")
	ep, _ := hyperion.LookupEndpoint(voters.Endpoint)
	req, err := hyperion.BuildRequest("https://wax.example", &ep, voters.Args())
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	if req.URL != "https://wax.example/v2/state/get_voters?producer=eosriobrazil&limit=25" {
		t.Fatalf("unexpected URL %s", req.URL)
	}
}

func TestLoadRegistryFromJSONNumbers(t *testing.T) {
	path := writeFile(t, "queries.json", `{"queries":[{"id":"missed","endpoint":"get_missed_blocks","params":{"min_blocks":3}}]}`)
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if _, ok := reg.ByID("missed"); !ok {
		t.Fatalf("expected missed query")
	}
}

func TestLoadRegistryRejectsInvalidQueries(t *testing.T) {
	cases := map[string]string{
		"unknown endpoint": `queries: [{id: a, endpoint: get_everything}]`,
		"missing param":    `queries: [{id: a, endpoint: get_creator}]`,
		"unknown param":    `queries: [{id: a, endpoint: get_creator, params: {account: x, acount: y}}]`,
		"duplicate id":     `queries: [{id: a, endpoint: get_info}, {id: a, endpoint: health}]`,
		"missing id":       `queries: [{endpoint: get_info}]`,
		"empty":            `queries: []`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadRegistry(writeFile(t, "queries.yaml", content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestValidateQueryWrapsArgumentError(t *testing.T) {
	err := validateQuery(sanitizeQuery(Query{ID: "r", Endpoint: "get_resource_usage", Params: map[string]any{"code": "eosio"}}))
	if !errors.Is(err, hyperion.ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}
