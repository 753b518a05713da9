// Package stats computes the summary figures shown on the admin dashboard
// cards: sums, averages, percentages, frequency rankings, and threshold
// counts over a normalized record sample. All functions are total over
// well-formed slices; records whose field does not resolve degrade to
// exclusion or a sentinel, never to a silent zero.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/mirayfashion/admin-backend/pkg/extract"
)

// Dash is the presentation sentinel for "data not available". It is distinct
// from a legitimate zero ("0.0%").
const Dash = "—"

// NumberFunc resolves a numeric field from a record. ok=false means the
// record does not carry the field in any recognized spelling.
type NumberFunc func(extract.Record) (float64, bool)

// KeyFunc resolves a grouping key from a record.
type KeyFunc func(extract.Record) string

// Accumulation is the result of summing a field over a sample.
type Accumulation struct {
	Total        float64 `json:"total"`
	Contributing int     `json:"contributing"`
}

// Sum totals a field across the sample. Records where the field does not
// resolve are excluded from both the total and the contributing count, so
// the derived average is over contributors only.
func Sum(recs []extract.Record, pick NumberFunc) Accumulation {
	var acc Accumulation
	for _, rec := range recs {
		if v, ok := pick(rec); ok {
			acc.Total += v
			acc.Contributing++
		}
	}
	return acc
}

// Avg returns the mean over contributing records, or false if none
// contributed.
func (a Accumulation) Avg() (float64, bool) {
	if a.Contributing == 0 {
		return 0, false
	}
	return a.Total / float64(a.Contributing), true
}

// Percent formats numerator/denominator*100 to one decimal place. A NaN
// numerator (unresolved value), or a zero/NaN denominator, yields Dash —
// never Inf and never a division artifact.
func Percent(numerator, denominator float64) string {
	if math.IsNaN(numerator) || math.IsNaN(denominator) || denominator == 0 {
		return Dash
	}
	return fmt.Sprintf("%.1f%%", numerator/denominator*100)
}

// KeyCount is one row of a frequency ranking.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopCounts builds a frequency ranking over a resolved key, descending by
// count, truncated to n. Ties are broken by first-seen order in the sample,
// not by map iteration order.
func TopCounts(recs []extract.Record, key KeyFunc, n int) []KeyCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, rec := range recs {
		k := key(rec)
		if _, seen := counts[k]; !seen {
			firstSeen[k] = i
		}
		counts[k]++
	}

	ranked := make([]KeyCount, 0, len(counts))
	for k, c := range counts {
		ranked = append(ranked, KeyCount{Key: k, Count: c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Key] < firstSeen[ranked[j].Key]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CountBuckets tallies every record into exactly one bucket. Unlike
// TopCounts it never truncates; status breakdowns must account for the whole
// sample.
func CountBuckets(recs []extract.Record, key KeyFunc) map[string]int {
	buckets := make(map[string]int)
	for _, rec := range recs {
		buckets[key(rec)]++
	}
	return buckets
}

// Ranked is one row of a value ranking.
type Ranked struct {
	Record extract.Record `json:"record"`
	Value  float64        `json:"value"`
}

// TopByValue ranks the sample descending by a resolved numeric field and
// keeps the first k. Records where the field does not resolve are excluded
// from the ranking, matching the Sum exclusion rule.
func TopByValue(recs []extract.Record, pick NumberFunc, k int) []Ranked {
	ranked := make([]Ranked, 0, len(recs))
	for _, rec := range recs {
		if v, ok := pick(rec); ok {
			ranked = append(ranked, Ranked{Record: rec, Value: v})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// CountWhere counts records whose resolved field satisfies the predicate.
// Unresolved records fall into no threshold bucket in either direction.
func CountWhere(recs []extract.Record, pick NumberFunc, pred func(float64) bool) int {
	count := 0
	for _, rec := range recs {
		if v, ok := pick(rec); ok && pred(v) {
			count++
		}
	}
	return count
}

// FilterWhere returns the records whose resolved field satisfies the
// predicate, preserving sample order.
func FilterWhere(recs []extract.Record, pick NumberFunc, pred func(float64) bool) []extract.Record {
	out := make([]extract.Record, 0)
	for _, rec := range recs {
		if v, ok := pick(rec); ok && pred(v) {
			out = append(out, rec)
		}
	}
	return out
}

// AtMost builds an inclusive upper-bound predicate.
func AtMost(limit float64) func(float64) bool {
	return func(v float64) bool { return v <= limit }
}

// AtLeast builds an inclusive lower-bound predicate.
func AtLeast(limit float64) func(float64) bool {
	return func(v float64) bool { return v >= limit }
}
