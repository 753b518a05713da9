package extract

import "strings"

// UnknownStatus is the bucket for statuses the synonym table does not cover.
// Unmatched values are bucketed, never dropped, so status tallies always sum
// to the record count.
const UnknownStatus = "unknown"

// statusSynonyms maps normalized upstream spellings to canonical buckets.
// Keys are the output of normalizeStatusToken.
var statusSynonyms = map[string]string{
	"pending":         "pending",
	"awaiting_payment": "pending",
	"payment_pending": "pending",
	"unpaid":          "pending",

	"processing":  "processing",
	"in_progress": "processing",
	"preparing":   "processing",
	"confirmed":   "processing",
	"paid":        "processing",

	"shipped":    "shipped",
	"in_transit": "shipped",
	"dispatched": "shipped",

	"delivered": "delivered",
	"completed": "delivered",
	"complete":  "delivered",
	"done":      "delivered",

	"cancelled": "cancelled",
	"canceled":  "cancelled",
	"void":      "cancelled",

	"returned": "returned",
	"refunded": "returned",
	"refund":   "returned",
}

var statusPaths = []string{"status", "orderStatus", "order_status", "state"}

// Status resolves and canonicalizes a record's status field.
func Status(rec Record) string {
	s, ok := Text(rec, statusPaths...)
	if !ok {
		return UnknownStatus
	}
	return CanonicalStatus(s)
}

// CanonicalStatus maps a raw status string to one of the fixed buckets.
// Matching is case-insensitive and tolerant of whitespace, hyphen, and
// underscore variations ("Payment Pending" == "payment_pending").
func CanonicalStatus(raw string) string {
	token := normalizeStatusToken(raw)
	if token == "" {
		return UnknownStatus
	}
	if bucket, ok := statusSynonyms[token]; ok {
		return bucket
	}
	return UnknownStatus
}

// normalizeStatusToken lowercases and collapses runs of separators to a
// single underscore.
func normalizeStatusToken(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	lastSep := false
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == '_' || r == '-' {
			if !lastSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			lastSep = true
			continue
		}
		b.WriteRune(r)
		lastSep = false
	}
	return strings.TrimSuffix(b.String(), "_")
}
