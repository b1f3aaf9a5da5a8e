// Package similarity provides normalized token similarity scoring.
//
// # Supported Metrics
//
//   - MetricJaroWinkler: Jaro-Winkler similarity (default, Unicode-safe)
//   - MetricLevenshtein: bounded edit distance converted to a similarity
//     score (byte-wise, exact for ASCII only)
//
// # Usage
//
//	score := similarity.JaroWinkler("colour", "color")
//	sim, _ := similarity.Provider(similarity.MetricLevenshtein, 0.7)
//	score = sim("kitten", "sitting")
package similarity
