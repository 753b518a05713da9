package extract_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestList_Totality(t *testing.T) {
	t.Run("array passes through", func(t *testing.T) {
		v := decode(t, `[1, 2]`)
		assert.Equal(t, []any{float64(1), float64(2)}, extract.List(v))
	})

	t.Run("first candidate key wins", func(t *testing.T) {
		v := decode(t, `{"orders": [{"a": 1}], "data": "x"}`)
		got := extract.List(v, "orders", "data")
		require.Len(t, got, 1)
		assert.Equal(t, map[string]any{"a": float64(1)}, got[0])
	})

	t.Run("candidate order is significant", func(t *testing.T) {
		v := decode(t, `{"orders": [{"a": 1}], "data": [{"b": 2}]}`)
		got := extract.List(v, "orders", "data")
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "a")
	})

	t.Run("non-array candidate values are skipped", func(t *testing.T) {
		v := decode(t, `{"orders": "oops", "data": [{"b": 2}]}`)
		got := extract.List(v, "orders", "data")
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "b")
	})

	t.Run("nil yields empty", func(t *testing.T) {
		assert.Empty(t, extract.List(nil, "data"))
	})

	t.Run("scalar yields empty", func(t *testing.T) {
		assert.Empty(t, extract.List("hello", "data"))
	})
}

func TestRecords_DropsScalars(t *testing.T) {
	v := decode(t, `{"data": [{"a": 1}, 7, "x", {"b": 2}]}`)
	recs := extract.Records(v, "data")
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "a")
	assert.Contains(t, recs[1], "b")
}

func TestNumber_SkipsNonNumeric(t *testing.T) {
	rec := extract.Record{"total": "abc", "grandTotal": float64(42)}

	v, ok := extract.Number(rec, "total", "grandTotal")
	require.True(t, ok)
	assert.Equal(t, float64(42), v)
}

func TestNumber_NumericStringAccepted(t *testing.T) {
	rec := extract.Record{"total": " 19.90 "}

	v, ok := extract.Number(rec, "total")
	require.True(t, ok)
	assert.InDelta(t, 19.90, v, 1e-9)
}

func TestNumber_FoundZeroIsNotMissing(t *testing.T) {
	rec := extract.Record{"total": float64(0)}

	v, ok := extract.Number(rec, "total")
	require.True(t, ok)
	assert.Zero(t, v)

	_, ok = extract.Number(extract.Record{}, "total")
	assert.False(t, ok)
}

func TestNumber_NestedPath(t *testing.T) {
	v := decode(t, `{"pricing": {"total": 99.5}}`)
	rec, ok := v.(map[string]any)
	require.True(t, ok)

	got, found := extract.Number(rec, "total", "pricing.total")
	require.True(t, found)
	assert.Equal(t, 99.5, got)
}

func TestText_TrimsAndSkipsEmpty(t *testing.T) {
	rec := extract.Record{"name": "   ", "title": "  Summer Dress "}

	s, ok := extract.Text(rec, "name", "title")
	require.True(t, ok)
	assert.Equal(t, "Summer Dress", s)
}

func TestAgeHours(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("elapsed hours", func(t *testing.T) {
		rec := extract.Record{"createdAt": "2026-03-01T09:00:00Z"}
		age, ok := extract.AgeHours(rec, now, "createdAt", "created_at")
		require.True(t, ok)
		assert.InDelta(t, 3.0, age, 1e-9)
	})

	t.Run("future timestamps clamp to zero", func(t *testing.T) {
		rec := extract.Record{"createdAt": "2026-03-01T15:00:00Z"}
		age, ok := extract.AgeHours(rec, now, "createdAt")
		require.True(t, ok)
		assert.Zero(t, age)
	})

	t.Run("unparseable is not-found, not zero", func(t *testing.T) {
		rec := extract.Record{"createdAt": "yesterday-ish"}
		_, ok := extract.AgeHours(rec, now, "createdAt")
		assert.False(t, ok)
	})

	t.Run("date-only layout", func(t *testing.T) {
		rec := extract.Record{"created_at": "2026-02-28"}
		age, ok := extract.AgeHours(rec, now, "createdAt", "created_at")
		require.True(t, ok)
		assert.Greater(t, age, 24.0)
	})
}
