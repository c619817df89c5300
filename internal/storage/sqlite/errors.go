package sqlite

import (
	"fmt"
	"strings"

	"github.com/louisbranch/ludus/internal/storage"
)

// Messages raised by the validation triggers. Classification matches on
// them before the generic constraint fragments.
var raisedMessages = []string{
	"survivors exceed participant count",
	"participant count must not be negative",
	"beast count must not be negative",
}

// classifyConstraintError maps SQLite rejection messages onto the storage
// sentinels so callers can branch with errors.Is while keeping the
// driver's descriptive text. Unrecognized errors pass through unchanged.
func classifyConstraintError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, raised := range raisedMessages {
		if strings.Contains(msg, raised) {
			return fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}
	}
	if strings.Contains(msg, "foreign key constraint failed") {
		return fmt.Errorf("%w: %v", storage.ErrInvalidReference, err)
	}
	if strings.Contains(msg, "check constraint failed") || strings.Contains(msg, "not null constraint failed") {
		return fmt.Errorf("%w: %v", storage.ErrConstraint, err)
	}
	return err
}
