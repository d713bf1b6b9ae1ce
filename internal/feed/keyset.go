package feed

import "fmt"

// Keyset returns the ORDER BY clause for order and, when after is set, the condition selecting
// rows strictly after it. Placeholders are numbered from firstArg. Tables must have id, score
// and created_at columns for the orders they are paged by.
func Keyset(order Order, after *Key, firstArg int) (cond string, args []any, orderBy string, err error) {
	switch order {
	case OrderScoreDesc:
		orderBy = "score DESC, id DESC"
		if after != nil {
			cond = fmt.Sprintf("(score, id) < ($%d, $%d)", firstArg, firstArg+1)
			args = []any{after.Score, after.ID}
		}
	case OrderCreatedAtDesc:
		orderBy = "created_at DESC, id DESC"
		if after != nil {
			cond = fmt.Sprintf("(created_at, id) < ($%d, $%d)", firstArg, firstArg+1)
			args = []any{after.CreatedAt, after.ID}
		}
	default:
		return "", nil, "", fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	return cond, args, orderBy, nil
}
