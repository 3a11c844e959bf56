package storage

import (
	"context"
	"encoding/json"
)

// Persisted key names. Every store owns exactly one slice of this keyspace.
const (
	KeyCart  = "panther_cart"
	KeyToken = "panther_token"
	KeyUser  = "panther_user"
	KeyTheme = "panther_theme"
)

// Bridge is the persistence layer underneath the stores: a string-keyed
// blob store over whatever local substrate is configured. It has no
// ownership of the data, only serialization duty.
type Bridge interface {
	// Load returns the stored value for key, with ok=false when the key
	// is absent.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Save overwrites any prior value under key.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// LoadJSON loads key and unmarshals it into out. It returns false when the
// key is missing, the backend fails, or the stored text is not valid JSON;
// the caller falls back to its default in all of those cases. A corrupt
// entry never reaches the caller as an error.
func LoadJSON(ctx context.Context, b Bridge, key string, out any) bool {
	raw, ok, err := b.Load(ctx, key)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// SaveJSON marshals v and stores it under key
func SaveJSON(ctx context.Context, b Bridge, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Save(ctx, key, raw)
}
