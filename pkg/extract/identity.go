package extract

import (
	"strconv"
	"strings"
)

// UnknownCustomer is the grouping key for records where no identity field
// resolves. It is a literal string, not an empty value, because group-by
// aggregation needs a stable non-empty key.
const UnknownCustomer = "unknown"

// Identity candidates in fixed priority order: email beats phone beats ids.
var (
	emailPaths = []string{"email", "customerEmail", "customer_email", "customer.email", "user.email"}
	phonePaths = []string{"phone", "customerPhone", "customer_phone", "customer.phone", "user.phone"}
	idPaths    = []string{"customerId", "customer_id", "customer.id", "userId", "user_id", "user.id"}
)

// CustomerKey derives a stable grouping key for the customer behind a record.
// Email is normalized (trimmed, lowercased) so the same address spelled
// differently across orders still groups together.
func CustomerKey(rec Record) string {
	if email, ok := Text(rec, emailPaths...); ok {
		return strings.ToLower(email)
	}
	if phone, ok := Text(rec, phonePaths...); ok {
		return phone
	}
	if id, ok := Text(rec, idPaths...); ok {
		return id
	}
	// Some endpoints emit numeric ids.
	if id, ok := Number(rec, idPaths...); ok {
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return UnknownCustomer
}
