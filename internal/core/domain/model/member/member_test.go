package member_test

import (
	"testing"

	"ordering/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("should create member", func(t *testing.T) {
		m, err := member.NewMember("alice", "Alice", "secret")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "alice", m.ID())
		assert.Equal(t, "Alice", m.Name())
	})

	t.Run("should fail with empty fields", func(t *testing.T) {
		_, err := member.NewMember("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "password")
	})
}

func TestMember_ChangePassword(t *testing.T) {
	t.Run("changes password when old one matches", func(t *testing.T) {
		m, _ := member.NewMember("alice", "Alice", "secret")

		require.NoError(t, m.ChangePassword("secret", "stronger"))
		assert.Equal(t, "stronger", m.Password())
	})

	t.Run("rejects mismatched old password", func(t *testing.T) {
		m, _ := member.NewMember("alice", "Alice", "secret")

		err := m.ChangePassword("wrong", "stronger")

		require.Error(t, err)
		assert.Equal(t, member.ErrPasswordMismatch, err)
		assert.Equal(t, "secret", m.Password())
	})

	t.Run("rejects empty new password", func(t *testing.T) {
		m, _ := member.NewMember("alice", "Alice", "secret")

		err := m.ChangePassword("secret", "")

		require.Error(t, err)
		assert.Equal(t, "secret", m.Password())
	})
}

func TestMember_IsEqual(t *testing.T) {
	t.Run("compares by id only", func(t *testing.T) {
		a, _ := member.NewMember("alice", "Alice", "secret")
		b, _ := member.NewMember("alice", "Renamed", "other")
		c, _ := member.NewMember("bob", "Alice", "secret")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
