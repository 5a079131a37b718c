package homework

import "context"

// Client fetches submission statuses updated since the given Unix timestamp.
// Implementations classify failures as *Fault where they can.
type Client interface {
	Statuses(ctx context.Context, fromDate int64) (*StatusResponse, error)
}
