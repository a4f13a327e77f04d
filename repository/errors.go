package repository

import (
	"errors"
	"fmt"

	"github.com/anjiri1684/tutor_booking/errdefs"
	"gorm.io/gorm"
)

// translate maps gorm errors onto errdefs sentinels and adds the operation
// name. The DB must be opened with TranslateError for the constraint cases.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, errdefs.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %v", op, errdefs.ErrUniqueViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// The referenced teacher or goal is gone.
		return fmt.Errorf("%s: %w: %v", op, errdefs.ErrNotFound, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
