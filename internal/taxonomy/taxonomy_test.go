package taxonomy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)
	require.NotNil(t, tax)

	t.Run("returns the same instance", func(t *testing.T) {
		again, err := Default()
		require.NoError(t, err)
		assert.Same(t, tax, again)
	})

	t.Run("has all thirteen categories in order", func(t *testing.T) {
		want := []string{"E", "D", "R", "O", "F", "S", "H", "M", "I", "J", "K", "L", "T"}
		var got []string
		for _, e := range tax.Categories() {
			got = append(got, e.Code)
		}
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("category descriptions", func(t *testing.T) {
		desc, err := tax.CategoryDescription("E")
		require.NoError(t, err)
		assert.Equal(t, "Equities", desc)

		desc, err = tax.CategoryDescription("D")
		require.NoError(t, err)
		assert.Equal(t, "Debt instruments", desc)
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.False(t, tax.HasCategory("Z"))
		_, err := tax.CategoryDescription("Z")
		assert.ErrorIs(t, err, ErrUnknownCategory)
		_, err = tax.Groups("Z")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("groups of a category", func(t *testing.T) {
		groups, err := tax.Groups("E")
		require.NoError(t, err)
		require.NotEmpty(t, groups)
		assert.Equal(t, Entry{Code: "S", Description: "Shares"}, groups[0])
		assert.True(t, tax.HasGroup("E", "S"))
		assert.False(t, tax.HasGroup("E", "Z"))
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := tax.GroupDescription("E", "Z")
		assert.ErrorIs(t, err, ErrUnknownGroup)
	})
}

func TestDefaultAttributeRules(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	t.Run("defined pair with explicit rules", func(t *testing.T) {
		assert.True(t, tax.DefinedPair("E", "S"))
		for pos := MinAttributePosition; pos <= MaxAttributePosition; pos++ {
			assert.True(t, tax.DefinedPosition("E", "S", pos), "position %d", pos)
		}

		options, err := tax.AttributeOptions("E", "S", 3)
		require.NoError(t, err)
		assert.Equal(t, Entry{Code: "V", Description: "Voting"}, options[0])

		desc, ok := tax.AttributeDescription("E", "S", 4, "N")
		require.True(t, ok)
		assert.Equal(t, "Free", desc)

		_, ok = tax.AttributeDescription("E", "S", 3, "A")
		assert.False(t, ok)
	})

	t.Run("pair without explicit rules falls back to X", func(t *testing.T) {
		require.True(t, tax.HasGroup("E", "L"), "limited partnership units exists without rules")
		assert.False(t, tax.DefinedPair("E", "L"))

		options, err := tax.AttributeOptions("E", "L", 3)
		require.NoError(t, err)
		assert.Equal(t, []Entry{NotApplicable}, options)

		desc, ok := tax.AttributeDescription("E", "L", 3, "X")
		require.True(t, ok)
		assert.Equal(t, NotApplicable.Description, desc)

		_, ok = tax.AttributeDescription("E", "L", 3, "Q")
		assert.False(t, ok)
	})

	t.Run("position out of range", func(t *testing.T) {
		_, err := tax.AttributeOptions("E", "S", 2)
		assert.ErrorIs(t, err, ErrInvalidPosition)
		_, err = tax.AttributeOptions("E", "S", 7)
		assert.ErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("options are copies", func(t *testing.T) {
		options, err := tax.AttributeOptions("E", "S", 3)
		require.NoError(t, err)
		options[0] = Entry{Code: "?", Description: "mutated"}

		again, err := tax.AttributeOptions("E", "S", 3)
		require.NoError(t, err)
		assert.Equal(t, "V", again[0].Code)
	})
}

func TestParse(t *testing.T) {
	valid := []byte(`
categories:
  - code: A
    description: Apples
    groups:
      - code: B
        description: Braeburn
        attributes:
          - position: 3
            options:
              - { code: R, description: Red }
              - { code: X, description: Not applicable/Not specified }
`)

	t.Run("accepts a minimal schema", func(t *testing.T) {
		tax, err := Parse(valid)
		require.NoError(t, err)
		assert.True(t, tax.HasCategory("A"))
		assert.True(t, tax.DefinedPosition("A", "B", 3))
		assert.False(t, tax.DefinedPosition("A", "B", 4))
	})

	rejections := []struct {
		name string
		doc  string
	}{
		{"empty document", ``},
		{"no categories", `categories: []`},
		{"lowercase category code", "categories:\n  - code: a\n    groups:\n      - code: B"},
		{"multi-letter category code", "categories:\n  - code: AB\n    groups:\n      - code: B"},
		{"category without groups", "categories:\n  - code: A\n    groups: []"},
		{"duplicate category", "categories:\n  - code: A\n    groups:\n      - code: B\n  - code: A\n    groups:\n      - code: B"},
		{"duplicate group", "categories:\n  - code: A\n    groups:\n      - code: B\n      - code: B"},
		{"position out of range", "categories:\n  - code: A\n    groups:\n      - code: B\n        attributes:\n          - position: 7\n            options:\n              - { code: X }"},
		{"duplicate position", "categories:\n  - code: A\n    groups:\n      - code: B\n        attributes:\n          - position: 3\n            options:\n              - { code: X }\n          - position: 3\n            options:\n              - { code: X }"},
		{"rule without options", "categories:\n  - code: A\n    groups:\n      - code: B\n        attributes:\n          - position: 3\n            options: []"},
		{"duplicate option", "categories:\n  - code: A\n    groups:\n      - code: B\n        attributes:\n          - position: 3\n            options:\n              - { code: X }\n              - { code: X }"},
		{"not yaml", `{{{{`},
	}

	for _, tc := range rejections {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does-not-exist.yaml")
		assert.Error(t, err)
	})

	t.Run("embedded schema on disk", func(t *testing.T) {
		tax, err := LoadFile("schema/iso10962.yaml")
		require.NoError(t, err)
		assert.Len(t, tax.Categories(), 13)
	})
}
