package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	spec, err := Load()
	require.NoError(t, err)
	require.NotNil(t, spec)

	assert.Equal(t, "http", spec.Program)
	require.NotEmpty(t, spec.Groups)
	assert.Equal(t, "Positional arguments", spec.Groups[0].Name)

	t.Run("positionals resolve by metavar", func(t *testing.T) {
		for _, metavar := range []string{"METHOD", "URL", "REQUEST_ITEM"} {
			arg, err := spec.FindByTargetName(metavar)
			require.NoError(t, err)
			assert.Empty(t, arg.Aliases)
			assert.True(t, arg.Positional)
			assert.Equal(t, metavar, arg.Metavar())
		}
	})

	t.Run("configuration mapping decodes into the typed record", func(t *testing.T) {
		pretty, err := spec.FindByTargetName("--pretty")
		require.NoError(t, err)
		assert.Equal(t, []string{"all", "colors", "format", "none"}, pretty.Config.Choices)
		assert.Nil(t, pretty.Config.Metavar)

		style, err := spec.FindByTargetName("--style")
		require.NoError(t, err)
		assert.True(t, style.Config.LazyChoices)
		require.NotNil(t, style.Config.Metavar)
		assert.Equal(t, "STYLE", *style.Config.Metavar)

		auth, err := spec.FindByTargetName("--auth")
		require.NoError(t, err)
		require.NotNil(t, auth.Config.Metavar)
		assert.Equal(t, "USER[:PASS]", *auth.Config.Metavar)
	})

	t.Run("hidden arguments stay out of the flag list", func(t *testing.T) {
		_, err := spec.FindByTargetName("--default-scheme")
		require.NoError(t, err)
		for _, arg := range spec.Flags() {
			assert.NotContains(t, arg.Aliases, "--default-scheme")
		}
	})

	t.Run("every flag fits the fish alias shape", func(t *testing.T) {
		// The fish serializer unpacks aliases as short+long, the real
		// definition must never carry more than two spellings.
		for _, arg := range spec.Flags() {
			count := len(arg.Aliases)
			assert.GreaterOrEqual(t, count, 1, "flag %v", arg.Aliases)
			assert.LessOrEqual(t, count, 2, "flag %v", arg.Aliases)
		}
	})

	t.Run("loading is deterministic", func(t *testing.T) {
		again, err := Load()
		require.NoError(t, err)
		assert.Equal(t, spec, again)
	})
}
