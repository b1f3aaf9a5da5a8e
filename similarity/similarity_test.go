package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJaro(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		assert.Equal(t, 1.0, Jaro("martha", "martha"))
	})

	t.Run("BothEmpty", func(t *testing.T) {
		assert.Equal(t, 1.0, Jaro("", ""))
	})

	t.Run("OneEmpty", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaro("martha", ""))
		assert.Equal(t, 0.0, Jaro("", "martha"))
	})

	t.Run("NoMatches", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaro("abc", "xyz"))
	})

	t.Run("KnownValues", func(t *testing.T) {
		assert.InDelta(t, 0.944444, Jaro("martha", "marhta"), 1e-6)
		assert.InDelta(t, 0.766667, Jaro("dixon", "dicksonx"), 1e-6)
	})

	t.Run("Symmetric", func(t *testing.T) {
		assert.Equal(t, Jaro("dwayne", "duane"), Jaro("duane", "dwayne"))
	})
}

func TestJaroWinkler(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		assert.InDelta(t, 0.961111, JaroWinkler("martha", "marhta"), 1e-6)
		assert.InDelta(t, 0.813333, JaroWinkler("dixon", "dicksonx"), 1e-6)
	})

	t.Run("PrefixBoost", func(t *testing.T) {
		// Shared prefix must not lower the score.
		assert.GreaterOrEqual(t, JaroWinkler("prefixes", "prefixed"), Jaro("prefixes", "prefixed"))
	})

	t.Run("PrefixCappedAtFour", func(t *testing.T) {
		j := Jaro("abcdefgh", "abcdefgx")
		expected := j + 4*winklerPrefixWeight*(1-j)
		assert.InDelta(t, expected, JaroWinkler("abcdefgh", "abcdefgx"), 1e-9)
	})

	t.Run("Unicode", func(t *testing.T) {
		assert.Equal(t, 1.0, JaroWinkler("日本語", "日本語"))
		assert.Greater(t, JaroWinkler("日本語", "日本"), 0.0)
		assert.Less(t, JaroWinkler("日本語", "日本"), 1.0)
	})
}

func TestBoundedLevenshtein(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		dist, ok := BoundedLevenshtein("kitten", "sitting", 7)
		require.True(t, ok)
		assert.Equal(t, 3, dist)
	})

	t.Run("Identical", func(t *testing.T) {
		dist, ok := BoundedLevenshtein("abc", "abc", 0)
		require.True(t, ok)
		assert.Equal(t, 0, dist)
	})

	t.Run("EmptyStrings", func(t *testing.T) {
		dist, ok := BoundedLevenshtein("", "abc", 3)
		require.True(t, ok)
		assert.Equal(t, 3, dist)

		dist, ok = BoundedLevenshtein("abc", "", 3)
		require.True(t, ok)
		assert.Equal(t, 3, dist)

		dist, ok = BoundedLevenshtein("", "", 0)
		require.True(t, ok)
		assert.Equal(t, 0, dist)
	})

	t.Run("ExceedsBound", func(t *testing.T) {
		_, ok := BoundedLevenshtein("kitten", "sitting", 2)
		assert.False(t, ok)
	})

	t.Run("LengthDifferenceShortCircuit", func(t *testing.T) {
		_, ok := BoundedLevenshtein("a", "abcdefgh", 3)
		assert.False(t, ok)
	})

	t.Run("NegativeBound", func(t *testing.T) {
		_, ok := BoundedLevenshtein("a", "a", -1)
		assert.False(t, ok)
	})
}

func TestProvider(t *testing.T) {
	t.Run("JaroWinkler", func(t *testing.T) {
		sim, err := Provider(MetricJaroWinkler, 0.8)
		require.NoError(t, err)
		assert.InDelta(t, JaroWinkler("martha", "marhta"), sim("martha", "marhta"), 1e-9)
	})

	t.Run("Levenshtein", func(t *testing.T) {
		sim, err := Provider(MetricLevenshtein, 0.7)
		require.NoError(t, err)

		// dist 3, max len 7
		assert.InDelta(t, 1.0-3.0/7.0, sim("kitten", "sitting"), 1e-9)
		assert.Equal(t, 1.0, sim("", ""))
		assert.Equal(t, 1.0, sim("same", "same"))
	})

	t.Run("LevenshteinBound", func(t *testing.T) {
		// Threshold 0.9 on length 10 gives bound ceil(1) = 1: two edits
		// away must score 0.
		sim, err := Provider(MetricLevenshtein, 0.9)
		require.NoError(t, err)
		assert.Equal(t, 0.0, sim("aaaaaaaaaa", "aaaaaaaabb"))
		assert.InDelta(t, 0.9, sim("aaaaaaaaaa", "aaaaaaaaab"), 1e-9)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Provider(Metric(42), 0.8)
		assert.Error(t, err)
	})
}

func TestMetricNames(t *testing.T) {
	assert.Equal(t, "jaro_winkler", MetricJaroWinkler.String())
	assert.Equal(t, "levenshtein", MetricLevenshtein.String())

	m, ok := ByName("jaro_winkler")
	require.True(t, ok)
	assert.Equal(t, MetricJaroWinkler, m)

	m, ok = ByName("levenshtein")
	require.True(t, ok)
	assert.Equal(t, MetricLevenshtein, m)

	_, ok = ByName("soundex")
	assert.False(t, ok)
}

func TestDefaultThreshold(t *testing.T) {
	assert.Equal(t, 0.8, DefaultThreshold(MetricJaroWinkler))
	assert.Equal(t, 0.7, DefaultThreshold(MetricLevenshtein))
}
