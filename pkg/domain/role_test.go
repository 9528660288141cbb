package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "opendid/pkg/domain-errors"
)

func TestParseRole(t *testing.T) {
	t.Run("maps built-in labels", func(t *testing.T) {
		for _, label := range []string{"Admin", "Tas", "Issuer"} {
			r, known, err := ParseRole(label, true)
			require.NoError(t, err)
			assert.True(t, known)
			assert.Equal(t, label, r.String())
		}
	})

	t.Run("rejects empty label", func(t *testing.T) {
		_, _, err := ParseRole("", false)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, "Role type cannot be empty", dErrors.MessageOf(err))
	})

	t.Run("labels are case-sensitive", func(t *testing.T) {
		r, known, err := ParseRole("admin", false)
		require.NoError(t, err)
		assert.False(t, known)
		assert.NotEqual(t, RoleAdmin, r)
	})

	t.Run("custom labels accepted unless strict", func(t *testing.T) {
		r, known, err := ParseRole("Auditor", false)
		require.NoError(t, err)
		assert.False(t, known)
		assert.False(t, r.IsKnown())

		_, _, err = ParseRole("Auditor", true)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
