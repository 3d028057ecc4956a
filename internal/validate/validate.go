// Package validate holds stateless validation helpers shared by the
// resource services. The pagination bounds are checked here and only here;
// the store layer trusts the values it is handed.
package validate

import (
	"strings"

	"github.com/google/uuid"

	"github.com/srikarthikeya/caterers/internal/errs"
)

const MaxPageSize = 100

// canonical UUID length, 32 hex digits in 8-4-4-4-12 grouping
const uuidLen = 36

// UUID rejects values that are not canonical hyphenated UUIDs. field names
// the offending input in the error message.
func UUID(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Validation("%s cannot be null or empty", field)
	}
	// uuid.Parse also accepts braced, urn-prefixed and unhyphenated forms;
	// only the canonical grouping is valid here.
	if len(value) != uuidLen {
		return errs.Validation("invalid UUID format for %s", field)
	}
	if _, err := uuid.Parse(value); err != nil {
		return errs.Validation("invalid UUID format for %s", field)
	}
	return nil
}

// Pagination checks page/size bounds for list requests.
func Pagination(page, size int) error {
	if page < 0 {
		return errs.BadRequest("page number cannot be negative")
	}
	if size <= 0 {
		return errs.BadRequest("page size must be greater than 0")
	}
	if size > MaxPageSize {
		return errs.BadRequest("page size cannot exceed %d", MaxPageSize)
	}
	return nil
}
