// Package ids fabricates prefixed, time ordered identifiers.
package ids

import "github.com/google/uuid"

const (
	PrefixOrder    = "order"
	PrefixComment  = "comment"
	PrefixFile     = "file"
	PrefixDelivery = "delivery"
	PrefixSession  = "session"
	PrefixNotice   = "notice"
)

var newUUID = uuid.NewV7

// New returns "<prefix>-<uuid v7>". Falls back to a random UUID when the
// clock based generator fails.
func New(prefix string) string {
	id, err := newUUID()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}
