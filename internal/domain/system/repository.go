package system

import "context"

// Collections wiped by a full reset, in deletion order.
var Collections = []string{"appointments", "barbers", "services", "monthly_plans"}

type Repository interface {
	ListIDs(ctx context.Context, table string) ([]string, error)
	// DeleteIDs removes one chunk of rows in its own transaction.
	DeleteIDs(ctx context.Context, table string, ids []string) error
}
