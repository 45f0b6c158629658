//nolint:testpackage // Testing internal marker sets requires same package access
package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mixed case", in: "Shows EXCELLENT Progress", want: "shows excellent progress"},
		{name: "already lower", in: "needs work", want: "needs work"},
		{name: "punctuation preserved", in: "Didn't finish!", want: "didn't finish!"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestSet_CountDistinctMarkers(t *testing.T) {
	lex := New()

	// "struggling" contains both "struggle" and "struggling"; each marker
	// counts once no matter how often it appears.
	count := lex.Negative.Count("struggling and struggling again")
	assert.Equal(t, 2, count)
}

func TestSet_SubstringSemantics(t *testing.T) {
	lex := New()

	// Markers match inside larger words. "failed" fires both "fail" and
	// "failed".
	assert.Equal(t, 2, lex.Negative.Count("failed the exam"))

	// "understanding" matches the positive markers "understand" and
	// "understanding".
	assert.True(t, lex.Positive.Contains("deep understanding of the topic"))
}

func TestSet_Contains(t *testing.T) {
	lex := New()

	assert.True(t, lex.MixedStructure.Contains("good but slow"))
	assert.False(t, lex.MixedStructure.Contains("good and fast"))
	assert.True(t, lex.HardNegative.Contains("poor effort"))
	assert.False(t, lex.HardNegative.Contains("solid effort"))
}

func TestSet_Matched(t *testing.T) {
	lex := New()

	matched := lex.ExtremeNegative.Matched("terrible and awful result")
	assert.ElementsMatch(t, []string{"terrible", "awful"}, matched)
}

func TestNew_AllSetsPopulated(t *testing.T) {
	lex := New()

	for _, s := range lex.Sets() {
		require.NotEmpty(t, s.Name())
		assert.Positive(t, s.Size(), "set %s must not be empty", s.Name())
	}
}

func TestSet_EmptyText(t *testing.T) {
	lex := New()

	for _, s := range lex.Sets() {
		assert.Equal(t, 0, s.Count(""), "set %s", s.Name())
		assert.False(t, s.Contains(""), "set %s", s.Name())
	}
}
