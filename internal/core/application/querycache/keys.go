package querycache

import (
	"strings"

	"orderdesk/internal/core/ports"
)

// QueryKey identifies one cached collection read. Keys are explicit values
// passed in by the consumer; the cache never derives a key from ambient
// session state. QueryKey is comparable and usable as a map key.
type QueryKey struct {
	customerEmail string
}

// AllOrders is the key of the unfiltered order collection.
func AllOrders() QueryKey {
	return QueryKey{}
}

// CustomerOrders is the key of the collection filtered to one customer
// account. The email is normalized so equivalent spellings share an entry.
func CustomerOrders(email string) QueryKey {
	return QueryKey{customerEmail: strings.ToLower(strings.TrimSpace(email))}
}

// IsAllOrders reports whether the key targets the unfiltered collection.
func (k QueryKey) IsAllOrders() bool {
	return k.customerEmail == ""
}

// Filter returns the store filter this key stands for.
func (k QueryKey) Filter() ports.OrderFilter {
	return ports.OrderFilter{CustomerEmail: k.customerEmail}
}

// String returns a stable human-readable form, used in logs and error values.
func (k QueryKey) String() string {
	if k.IsAllOrders() {
		return "orders"
	}
	return "orders:email:" + k.customerEmail
}
