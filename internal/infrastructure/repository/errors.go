package repository

import (
	"errors"

	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"gorm.io/gorm"
)

// translateDuplicate maps a unique-constraint violation onto a 409 with the
// given message. The service layer pre-checks duplicates, but those lookups
// run under the soft-delete scope while the unique indexes span deleted rows,
// and concurrent writers can slip past the check either way.
func translateDuplicate(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError(message)
	}
	return err
}
