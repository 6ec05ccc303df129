package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "state key is empty"},
		{name: "whitespace", key: "   ", wantErr: "state key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid state key"},
		{name: "traversal", key: "../escape", wantErr: "invalid state key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := "tok-abc-123"

	err := store.Put(context.Background(), domain.CredentialStateKey, want)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), domain.CredentialStateKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, domain.CredentialStateKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateFileMode), info.Mode().Perm())
}

func TestStoreGetReportsAbsentKey(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), domain.IdentityStateKey)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)
}

func TestStoreToleratesExternallyClearedState(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), domain.LedgerStateKey, "snapshot"))

	// Simulate the user wiping the state directory between operations.
	require.NoError(t, os.RemoveAll(root))

	_, err := store.Get(context.Background(), domain.LedgerStateKey)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)

	require.NoError(t, store.Delete(context.Background(), domain.LedgerStateKey))
	require.NoError(t, store.Put(context.Background(), domain.LedgerStateKey, "fresh"))

	got, err := store.Get(context.Background(), domain.LedgerStateKey)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestStoreDeleteIsIdempotentWhenKeyMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), domain.CredentialStateKey))
	require.NoError(t, store.Delete(context.Background(), domain.CredentialStateKey))
}
