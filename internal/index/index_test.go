package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	t.Run("EmptyIndex", func(t *testing.T) {
		out, err := New().EncodeJSON()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(out))
	})

	t.Run("InsertionOrderAndSpacing", func(t *testing.T) {
		ix, err := Build(dataset(
			card("Foo", "Creature"),
			card("A-Foo", "Creature"),
			card("Sink into Stupor // Soporific Springs", "Sorcery"),
		), BuildOptions{})
		require.NoError(t, err)

		out, err := ix.EncodeJSON()
		require.NoError(t, err)

		want := `{"foo": ["Creature"], ` +
			`"sink into stupor // soporific springs": ["Sorcery"], ` +
			`"sink into stupor": ["Sorcery"], ` +
			`"soporific springs": ["Sorcery"]}`
		assert.Equal(t, want, string(out))
	})

	t.Run("MultipleTypeTags", func(t *testing.T) {
		ix, err := Build(dataset(
			card("Dryad Arbor", "Land", "Creature"),
		), BuildOptions{})
		require.NoError(t, err)

		out, err := ix.EncodeJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"dryad arbor": ["Land", "Creature"]}`, string(out))
	})

	t.Run("Idempotent", func(t *testing.T) {
		ix, err := Build(dataset(
			card("Foo", "Creature"),
			card("Bar", "Land"),
		), BuildOptions{})
		require.NoError(t, err)

		first, err := ix.EncodeJSON()
		require.NoError(t, err)
		second, err := ix.EncodeJSON()
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestGet(t *testing.T) {
	ix, err := Build(dataset(card("Grizzly Bears", "Creature")), BuildOptions{})
	require.NoError(t, err)

	types, ok := ix.Get("Grizzly Bears")
	require.True(t, ok)
	assert.Equal(t, []string{"Creature"}, types)

	_, ok = ix.Get("Ornithopter")
	assert.False(t, ok)
}
