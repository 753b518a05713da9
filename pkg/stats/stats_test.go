package stats_test

import (
	"math"
	"testing"
	"time"

	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickV(rec extract.Record) (float64, bool) {
	return extract.Number(rec, "v")
}

func TestSum_ExcludesUnresolved(t *testing.T) {
	recs := []extract.Record{
		{"v": float64(10)},
		{"v": nil},
		{"v": float64(5)},
	}

	acc := stats.Sum(recs, pickV)
	assert.Equal(t, float64(15), acc.Total)
	assert.Equal(t, 2, acc.Contributing)

	avg, ok := acc.Avg()
	require.True(t, ok)
	assert.Equal(t, 7.5, avg)
}

func TestAvg_NoContributors(t *testing.T) {
	acc := stats.Sum([]extract.Record{{"v": "abc"}}, pickV)
	_, ok := acc.Avg()
	assert.False(t, ok)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, stats.Dash, stats.Percent(5, 0))
	assert.Equal(t, "0.0%", stats.Percent(0, 10))
	assert.Equal(t, stats.Dash, stats.Percent(math.NaN(), 10))
	assert.Equal(t, "50.0%", stats.Percent(5, 10))
	assert.Equal(t, "33.3%", stats.Percent(1, 3))
}

func TestTopCounts_FirstSeenTieBreak(t *testing.T) {
	recs := []extract.Record{
		{"code": "SUMMER10"},
		{"code": "WELCOME"},
		{"code": "SUMMER10"},
		{"code": "VIP"},
		{"code": "WELCOME"},
	}
	key := func(rec extract.Record) string {
		s, _ := extract.Text(rec, "code")
		return s
	}

	top := stats.TopCounts(recs, key, 2)
	require.Len(t, top, 2)
	// SUMMER10 and WELCOME tie at 2; SUMMER10 was seen first.
	assert.Equal(t, stats.KeyCount{Key: "SUMMER10", Count: 2}, top[0])
	assert.Equal(t, stats.KeyCount{Key: "WELCOME", Count: 2}, top[1])
}

// Ranking and summing share one exclusion policy: a record whose field does
// not resolve appears in neither.
func TestTopByValue_ExcludesUnresolved(t *testing.T) {
	recs := []extract.Record{
		{"v": float64(10)},
		{"v": nil},
		{"v": float64(5)},
	}

	top := stats.TopByValue(recs, pickV, 0)
	require.Len(t, top, 2)
	assert.Equal(t, float64(10), top[0].Value)
	assert.Equal(t, float64(5), top[1].Value)

	first := stats.TopByValue(recs, pickV, 1)
	require.Len(t, first, 1)
	assert.Equal(t, float64(10), first[0].Value)
}

func TestCountWhere_Thresholds(t *testing.T) {
	recs := []extract.Record{
		{"stock": float64(2)},
		{"stock": float64(5)},
		{"stock": float64(6)},
		{"name": "no stock field"},
	}
	pick := func(rec extract.Record) (float64, bool) {
		return extract.Number(rec, "stock")
	}

	// Bound is inclusive; the unresolved record is in no bucket.
	assert.Equal(t, 2, stats.CountWhere(recs, pick, stats.AtMost(5)))
	assert.Equal(t, 2, stats.CountWhere(recs, pick, stats.AtLeast(5)))
	assert.Len(t, stats.FilterWhere(recs, pick, stats.AtMost(5)), 2)
}

// End-to-end: mixed order sample through normalize, pick and aggregate.
func TestOrderSampleEndToEnd(t *testing.T) {
	payload := map[string]any{
		"orders": []any{
			map[string]any{"total": float64(100), "status": "shipped"},
			map[string]any{"grandTotal": float64(50), "status": "delivered"},
			map[string]any{"note": "broken record", "status": "cancelled"},
		},
	}

	recs := extract.Records(payload, "orders", "data")
	require.Len(t, recs, 3)

	pickTotal := func(rec extract.Record) (float64, bool) {
		return extract.Number(rec, "total", "totalAmount", "grandTotal", "grand_total")
	}

	acc := stats.Sum(recs, pickTotal)
	assert.Equal(t, float64(150), acc.Total)
	assert.Equal(t, 2, acc.Contributing)

	avg, ok := acc.Avg()
	require.True(t, ok)
	assert.Equal(t, float64(75), avg)

	buckets := stats.CountBuckets(recs, extract.Status)
	assert.Equal(t, map[string]int{
		"shipped":   1,
		"delivered": 1,
		"cancelled": 1,
	}, buckets)
}

func TestCountBuckets_UnknownBucketKeepsTotals(t *testing.T) {
	recs := []extract.Record{
		{"status": "weird_status"},
		{"status": "pending"},
		{},
	}

	buckets := stats.CountBuckets(recs, extract.Status)
	total := 0
	for _, c := range buckets {
		total += c
	}
	assert.Equal(t, len(recs), total)
	assert.Equal(t, 2, buckets[extract.UnknownStatus])
}

func TestAgeBucketsOverOrders(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recs := []extract.Record{
		{"createdAt": "2026-03-01T11:00:00Z"}, // 1h — hot
		{"createdAt": "2026-02-27T12:00:00Z"}, // 48h — stale
		{"createdAt": "not a date"},           // neither
	}
	age := func(rec extract.Record) (float64, bool) {
		return extract.AgeHours(rec, now, "createdAt", "created_at")
	}

	assert.Equal(t, 1, stats.CountWhere(recs, age, stats.AtMost(2)))
	assert.Equal(t, 1, stats.CountWhere(recs, age, stats.AtLeast(24)))
}
