package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentStripsCarriageReturns(t *testing.T) {
	doc := NewDocument("One\r\nTwo\r\n")

	assert.Equal(t, []string{"One", "Two", ""}, doc.Lines)
	assert.Equal(t, "one\r\ntwo\r\n", doc.Lower)
}

func TestFirstStopsAtFirstSuccess(t *testing.T) {
	calls := 0
	never := NewStrategy("never", func(*Document) (int, bool) {
		calls++
		return 0, false
	})
	always := NewStrategy("always", func(*Document) (int, bool) { return 42, true })
	late := NewStrategy("late", func(*Document) (int, bool) {
		calls += 10
		return 7, true
	})

	v, by, ok := First(NewDocument(""), []Strategy[int]{never, always, late})

	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "always", by)
	assert.Equal(t, 1, calls)
}

func TestFirstWithoutSuccess(t *testing.T) {
	v, by, ok := First[string](NewDocument("x"), nil)

	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Empty(t, by)
}

func TestCollectRunsEveryAccumulator(t *testing.T) {
	add := func(name, value string) Accumulator {
		return NewAccumulator(name, func(_ *Document, found []string) []string {
			return append(found, value)
		})
	}

	got := Collect(NewDocument(""), []Accumulator{add("a", "1"), add("b", "2")})

	assert.Equal(t, []string{"1", "2"}, got)
}
