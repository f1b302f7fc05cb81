package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLazyWithoutTranslation(t *testing.T) {
	s := Lazy("%d apples", 3)
	assert.Equal(t, "3 apples", s.Evaluate())
	assert.Equal(t, "3 apples", s.String())
	assert.Equal(t, language.English, s.Language())
}

func TestLazyIsEvaluatedLate(t *testing.T) {
	key := "jsonit test greeting %s"
	s := LazyIn(language.German, key, "Welt")

	// nothing registered yet, the key is the format
	assert.Equal(t, "jsonit test greeting Welt", s.Evaluate())

	require.NoError(t, SetString(language.German, key, "Hallo %s"))
	assert.Equal(t, "Hallo Welt", s.Evaluate())

	// other languages are untouched
	assert.Equal(t, "jsonit test greeting Welt", LazyIn(language.Japanese, key, "Welt").Evaluate())
}

func TestLazyIsPromise(t *testing.T) {
	var p Promise = Lazy("x")
	assert.Equal(t, "x", p.Evaluate())
}
