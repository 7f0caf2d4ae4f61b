package mtgjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	t.Run("PreservesDocumentOrder", func(t *testing.T) {
		doc := `{
			"meta": {"date": "2024-07-19", "version": "5.2.2"},
			"data": {
				"Zof Consumption": [{"name": "Zof Consumption", "types": ["Sorcery"]}],
				"Ancient Den": [{"name": "Ancient Den", "types": ["Artifact", "Land"]}],
				"Mox Opal": [{"name": "Mox Opal", "types": ["Artifact"]}]
			}
		}`

		ds, err := ParseDataset(strings.NewReader(doc))
		require.NoError(t, err)

		assert.Equal(t, []string{"Zof Consumption", "Ancient Den", "Mox Opal"}, ds.Names)
		assert.Equal(t, 3, ds.Len())

		printings := ds.Printings("Ancient Den")
		require.Len(t, printings, 1)
		assert.Equal(t, []string{"Artifact", "Land"}, printings[0].Types)
	})

	t.Run("IgnoresUnknownPrintingFields", func(t *testing.T) {
		doc := `{"data": {"Foo": [{"name": "Foo", "types": ["Creature"], "manaCost": "{1}{G}", "power": "2"}]}}`

		ds, err := ParseDataset(strings.NewReader(doc))
		require.NoError(t, err)

		printings := ds.Printings("Foo")
		require.Len(t, printings, 1)
		assert.Equal(t, []string{"Creature"}, printings[0].Types)
	})

	t.Run("RepeatedKeyKeepsPositionTakesLastValue", func(t *testing.T) {
		doc := `{"data": {
			"Foo": [{"types": ["Creature"]}],
			"Bar": [{"types": ["Land"]}],
			"Foo": [{"types": ["Artifact"]}]
		}}`

		ds, err := ParseDataset(strings.NewReader(doc))
		require.NoError(t, err)

		assert.Equal(t, []string{"Foo", "Bar"}, ds.Names)
		assert.Equal(t, []string{"Artifact"}, ds.Printings("Foo")[0].Types)
	})

	t.Run("EmptyData", func(t *testing.T) {
		ds, err := ParseDataset(strings.NewReader(`{"data": {}}`))
		require.NoError(t, err)
		assert.Zero(t, ds.Len())
	})

	t.Run("MissingDataKey", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`{"meta": {"version": "5.2.2"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no "data" key`)
	})

	t.Run("DataNotAnObject", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`{"data": [1, 2, 3]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a JSON object")
	})

	t.Run("DocumentNotAnObject", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`[]`))
		require.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := ParseDataset(strings.NewReader(`{"data": {"Foo": [`))
		require.Error(t, err)
	})
}
