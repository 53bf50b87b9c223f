package session

import (
	"context"
	"errors"
	"testing"

	agentone "github.com/agentone/agentone-go"
)

func TestNewStoreInvalidType(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(StoreType("cookie")); !errors.Is(err, agentone.ErrInvalidStoreType) {
		t.Fatalf("NewStore(cookie) error = %v, want ErrInvalidStoreType", err)
	}
}

func TestNewStoreFileRequiresDir(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(StoreTypeFile); !errors.Is(err, agentone.ErrInvalidConfig) {
		t.Fatalf("NewStore(file) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewStoreRedisRequiresClient(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(StoreTypeRedis); !errors.Is(err, agentone.ErrInvalidConfig) {
		t.Fatalf("NewStore(redis) error = %v, want ErrInvalidConfig", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	stores := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{
			name: "memory",
			open: func(t *testing.T) Store {
				s, err := NewStore(StoreTypeMemory)
				if err != nil {
					t.Fatalf("NewStore: %v", err)
				}
				return s
			},
		},
		{
			name: "file",
			open: func(t *testing.T) Store {
				s, err := NewStore(StoreTypeFile, WithDir(t.TempDir()))
				if err != nil {
					t.Fatalf("NewStore: %v", err)
				}
				return s
			},
		},
	}

	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := tc.open(t)
			defer store.Close()
			ctx := context.Background()

			if _, err := store.Get(ctx, KeyAccessToken); !errors.Is(err, agentone.ErrNotFound) {
				t.Fatalf("Get absent key error = %v, want ErrNotFound", err)
			}

			if err := store.Set(ctx, KeyAccessToken, "tok"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := store.Get(ctx, KeyAccessToken)
			if err != nil || got != "tok" {
				t.Fatalf("Get = %q, %v, want tok", got, err)
			}

			// Set replaces the prior value.
			if err := store.Set(ctx, KeyAccessToken, "tok2"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if got, _ := store.Get(ctx, KeyAccessToken); got != "tok2" {
				t.Fatalf("Get after overwrite = %q, want tok2", got)
			}

			if err := store.Delete(ctx, KeyAccessToken); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Get(ctx, KeyAccessToken); !errors.Is(err, agentone.ErrNotFound) {
				t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
			}

			// Deleting an absent key is not an error.
			if err := store.Delete(ctx, KeyAccessToken); err != nil {
				t.Fatalf("Delete absent key: %v", err)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(StoreTypeFile, WithDir(dir))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := first.Set(ctx, KeyPrincipal, `{"user_id":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewStore(StoreTypeFile, WithDir(dir))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer second.Close()
	got, err := second.Get(ctx, KeyPrincipal)
	if err != nil || got != `{"user_id":1}` {
		t.Fatalf("Get after reopen = %q, %v", got, err)
	}
}
