package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

var errCorruptDocument = errors.New("stored document does not decode")

// loadJSON decodes the document stored under key. Reads fail open: on a
// missing key, a store error or an undecodable document it returns fallback
// untouched together with the cause.
func loadJSON[T any](ctx context.Context, store domain.Store, key string, fallback T) (T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("[STORE] Failed to read %s, using empty value: %v", key, err)
		}
		return fallback, err
	}

	// json.Unmarshal keeps filling fields after a type mismatch, so decode
	// into a scratch value and only hand it out whole.
	decoded := fallback
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Printf("[STORE] Corrupted data under %s, using empty value: %v", key, err)
		return fallback, fmt.Errorf("%w: %s: %v", errCorruptDocument, key, err)
	}
	return decoded, nil
}

func saveJSON(ctx context.Context, store domain.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		log.Printf("[STORE] Failed to write %s: %v", key, err)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
