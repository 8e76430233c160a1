package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	shiperrors "shipit.dev/shipit/internal/errors"
	"shipit.dev/shipit/internal/prompt"
)

func TestDefaultsPrompter(t *testing.T) {
	p := prompt.NewDefaultsPrompter()

	t.Run("confirm answers with the default", func(t *testing.T) {
		yes, err := p.Confirm("Push changes to the remote?", true)
		require.NoError(t, err)
		require.True(t, yes)

		no, err := p.Confirm("Continue the release with snapshot dependencies?", false)
		require.NoError(t, err)
		require.False(t, no)
	})

	t.Run("ask answers with the default", func(t *testing.T) {
		answer, err := p.Ask("Release version", "1.2.0")
		require.NoError(t, err)
		require.Equal(t, "1.2.0", answer)
	})

	t.Run("freeform questions have no default to answer with", func(t *testing.T) {
		_, err := p.AskFreeform("Enter a new tag name")
		require.ErrorIs(t, err, shiperrors.ErrNoInput)
	})
}
