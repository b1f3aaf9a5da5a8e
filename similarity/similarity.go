package similarity

import (
	"fmt"
	"math"
)

// winklerPrefixWeight is the standard Winkler prefix scaling factor.
const winklerPrefixWeight = 0.1

// winklerMaxPrefix caps the common-prefix bonus at four characters.
const winklerMaxPrefix = 4

// Metric selects the token similarity algorithm.
type Metric int

const (
	// MetricJaroWinkler scores tokens with Jaro-Winkler similarity.
	// Correct for arbitrary Unicode text. This is the default.
	MetricJaroWinkler Metric = iota

	// MetricLevenshtein scores tokens with a bounded edit distance
	// converted to a similarity. It operates on raw bytes and is only
	// correct for single-byte-per-character (ASCII) content; non-ASCII
	// input yields under- or over-counted distances, not errors.
	MetricLevenshtein
)

func (m Metric) String() string {
	switch m {
	case MetricJaroWinkler:
		return "jaro_winkler"
	case MetricLevenshtein:
		return "levenshtein"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ByName returns a metric by its stable name.
//
// This is used for self-describing snapshot formats that store the metric
// name in their header.
func ByName(name string) (Metric, bool) {
	switch name {
	case "jaro_winkler":
		return MetricJaroWinkler, true
	case "levenshtein":
		return MetricLevenshtein, true
	default:
		return 0, false
	}
}

// DefaultThreshold returns the recommended score threshold for a metric.
// Jaro-Winkler inflates scores via its prefix bonus and needs a stricter
// cut than plain edit distance.
func DefaultThreshold(m Metric) float64 {
	if m == MetricLevenshtein {
		return 0.7
	}
	return 0.8
}

// Func scores the similarity of two tokens in [0, 1], where 1 means
// identical.
type Func func(a, b string) float64

// Provider returns the scoring function for the given metric.
//
// threshold is the engine's score threshold; the Levenshtein provider uses
// it to bound the edit-distance computation (pairs whose true distance
// exceeds the bound score 0 and can never qualify).
func Provider(m Metric, threshold float64) (Func, error) {
	switch m {
	case MetricJaroWinkler:
		return JaroWinkler, nil
	case MetricLevenshtein:
		return func(a, b string) float64 {
			maxLen := max(len(a), len(b))
			if maxLen == 0 {
				return 1
			}
			bound := int(math.Ceil((1 - threshold) * float64(maxLen)))
			dist, ok := BoundedLevenshtein(a, b, bound)
			if !ok {
				return 0
			}
			return 1 - float64(dist)/float64(maxLen)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported similarity metric: %v", m)
	}
}

// Jaro computes the Jaro similarity of two strings in [0, 1].
// Operates on runes, so it is correct for arbitrary Unicode text.
func Jaro(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	la := len(ra)
	lb := len(rb)

	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	matchWindow := max(la, lb)/2 - 1
	if matchWindow < 0 {
		matchWindow = 0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)

	matches := 0
	for i := range ra {
		lo := max(0, i-matchWindow)
		hi := min(lb, i+matchWindow+1)
		for j := lo; j < hi; j++ {
			if bMatched[j] || ra[i] != rb[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions between the matched subsequences.
	transpositions := 0
	j := 0
	for i := range ra {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions))/m) / 3
}

// JaroWinkler computes the Jaro-Winkler similarity of two strings in
// [0, 1], boosting the Jaro score for strings that share a common prefix.
func JaroWinkler(a, b string) float64 {
	j := Jaro(a, b)

	ra := []rune(a)
	rb := []rune(b)

	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < winklerMaxPrefix {
		if ra[prefix] != rb[prefix] {
			break
		}
		prefix++
	}

	return j + float64(prefix)*winklerPrefixWeight*(1-j)
}

// BoundedLevenshtein computes the Levenshtein edit distance between a and
// b, giving up once the distance is known to exceed bound. The second
// return value is false when the true distance exceeds bound.
//
// The computation is byte-wise: for ASCII input it is the exact edit
// distance, for multi-byte UTF-8 input the result counts byte edits
// rather than rune edits.
func BoundedLevenshtein(a, b string, bound int) (int, bool) {
	if bound < 0 {
		return 0, false
	}

	la := len(a)
	lb := len(b)

	// The distance is at least the length difference.
	if la-lb > bound || lb-la > bound {
		return 0, false
	}

	if la == 0 {
		return lb, lb <= bound
	}
	if lb == 0 {
		return la, la <= bound
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]

		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			d := min(deletion, insertion, substitution)
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}

		// Every entry in later rows is at least the row minimum, so once
		// it crosses the bound no path can come back under it.
		if rowMin > bound {
			return 0, false
		}

		prev, curr = curr, prev
	}

	dist := prev[lb]
	return dist, dist <= bound
}
