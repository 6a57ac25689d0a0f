package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_Verify(t *testing.T) {
	bootstrap, err := NewCredentialService("")
	require.NoError(t, err)

	hash, err := bootstrap.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	svc, err := NewCredentialService("alice:" + hash)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		assert.True(t, svc.Verify("alice", "correct horse battery staple"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, svc.Verify("alice", "wrong password"))
	})

	t.Run("unknown username", func(t *testing.T) {
		assert.False(t, svc.Verify("mallory", "correct horse battery staple"))
	})

	t.Run("empty allow-list rejects everyone", func(t *testing.T) {
		assert.False(t, bootstrap.Verify("alice", "correct horse battery staple"))
	})

	t.Run("multiple entries with real hashes", func(t *testing.T) {
		bobHash, err := bootstrap.HashPassword("hunter2")
		require.NoError(t, err)

		multi, err := NewCredentialService("alice:" + hash + ";bob:" + bobHash)
		require.NoError(t, err)

		assert.True(t, multi.Verify("alice", "correct horse battery staple"))
		assert.True(t, multi.Verify("bob", "hunter2"))
		assert.False(t, multi.Verify("bob", "correct horse battery staple"))
	})
}

func TestCredentialService_HashPassword(t *testing.T) {
	svc, err := NewCredentialService("")
	require.NoError(t, err)

	hash, err := svc.HashPassword("some password")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "some password", hash)
	assert.Contains(t, hash, "argon2id")
}

func TestParseAllowList(t *testing.T) {
	tests := []struct {
		name      string
		allowList string
		expected  int
		shouldErr bool
	}{
		{
			name:      "empty allow-list",
			allowList: "",
			expected:  0,
		},
		{
			name:      "single entry",
			allowList: "alice:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			expected:  1,
		},
		{
			name: "multiple entries with whitespace",
			allowList: "alice:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA; " +
				"bob:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			expected: 2,
		},
		{
			name:      "entry without hash",
			allowList: "alice",
			shouldErr: true,
		},
		{
			name:      "entry with empty username",
			allowList: ":$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			shouldErr: true,
		},
		{
			name:      "entry with non-argon2id hash",
			allowList: "alice:5f4dcc3b5aa765d61d8327deb882cf99",
			shouldErr: true,
		},
		{
			name: "comma used as entry separator",
			allowList: "alice:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA," +
				"bob:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			shouldErr: true,
		},
		{
			name: "duplicate username",
			allowList: "alice:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA;" +
				"alice:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := parseAllowList(tt.allowList)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, users, tt.expected)
		})
	}
}
