package bookqa_test

import (
	"testing"

	"github.com/fwojciec/bookqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntent_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", bookqa.IntentUnknown.String())
	assert.Equal(t, "chapter_query", bookqa.IntentChapterQuery.String())
	assert.Equal(t, "intent(42)", bookqa.Intent(42).String())
}

func TestParseIntent(t *testing.T) {
	t.Parallel()

	t.Run("parses known name", func(t *testing.T) {
		t.Parallel()

		intent, err := bookqa.ParseIntent("history")
		require.NoError(t, err)
		assert.Equal(t, bookqa.IntentHistory, intent)
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := bookqa.ParseIntent("weather")
		require.Error(t, err)
		assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
	})
}

func TestFirstEntity(t *testing.T) {
	t.Parallel()

	entities := []bookqa.Entity{
		{Text: "risk", Kind: bookqa.EntityTerm},
		{Text: "3", Kind: bookqa.EntityCardinal},
		{Text: "5", Kind: bookqa.EntityCardinal},
	}

	text, ok := bookqa.FirstEntity(entities, bookqa.EntityCardinal)
	assert.True(t, ok)
	assert.Equal(t, "3", text)

	_, ok = bookqa.FirstEntity(nil, bookqa.EntityCardinal)
	assert.False(t, ok)
}

func TestKeywordTable_Clone(t *testing.T) {
	t.Parallel()

	orig := bookqa.KeywordTable{bookqa.IntentBook: {" Book ", "", "AUTHOR"}}

	clone := orig.Clone()
	clone[bookqa.IntentBook][0] = "changed"

	assert.Equal(t, []string{"changed", "author"}, clone[bookqa.IntentBook])
	assert.Equal(t, " Book ", orig[bookqa.IntentBook][0])
}

func TestKeywordTable_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, bookqa.DefaultKeywords().Validate())

	err := bookqa.KeywordTable{bookqa.IntentChapterQuery: {"say about"}}.Validate()
	require.Error(t, err)
	assert.Equal(t, bookqa.EINVALID, bookqa.ErrorCode(err))
}

func TestDefaultKeywords_ReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	a := bookqa.DefaultKeywords()
	a[bookqa.IntentBook] = nil

	b := bookqa.DefaultKeywords()
	assert.Contains(t, b[bookqa.IntentBook], "tell me about")
}

func TestFilterTerms(t *testing.T) {
	t.Parallel()

	t.Run("drops stopwords and blanks", func(t *testing.T) {
		t.Parallel()

		terms := bookqa.FilterTerms([]string{"The", "Insurance", " ", "for", "claims"})

		assert.Equal(t, []string{"insurance", "claims"}, terms)
	})

	t.Run("returns empty slice for only stopwords", func(t *testing.T) {
		t.Parallel()

		terms := bookqa.FilterTerms([]string{"the", "and", "by"})

		assert.NotNil(t, terms)
		assert.Empty(t, terms)
	})
}
