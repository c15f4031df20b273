package watcher

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// volatileKeys change on every Hyperion response without the indexed data
// changing, so they are left out of the digest.
var volatileKeys = []string{
	"query_time_ms",
	"query_time",
	"cached",
	"cache_expires_in",
	"last_indexed_block",
	"last_indexed_block_time",
	"hot_only",
	"lib",
}

// Digest returns the SHA-256 of the canonical form of payload and the
// compacted payload itself.
func Digest(payload json.RawMessage) (string, json.RawMessage, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		return "", nil, fmt.Errorf("compact payload: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(compact.Bytes()))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	if obj, ok := doc.(map[string]any); ok {
		for _, k := range volatileKeys {
			delete(obj, k)
		}
	}

	// encoding/json sorts map keys, which makes the encoding canonical.
	canonical, err := json.Marshal(doc)
	if err != nil {
		return "", nil, fmt.Errorf("encode payload: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), json.RawMessage(compact.Bytes()), nil
}
