package entry

import (
	"fmt"
	"time"

	"github.com/daily-ledger/backend/internal/domain/entity"
	domainerror "github.com/daily-ledger/backend/internal/domain/error"
)

// validateEntryFields checks the user-supplied fields of an entry.
func validateEntryFields(date time.Time, title, mood string) error {
	if date.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryDateRequired,
			"entry date is required",
			domainerror.ErrEntryDateRequired,
		)
	}
	if len(title) > entity.MaxEntryTitleLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", entity.MaxEntryTitleLength),
			domainerror.ErrEntryTitleTooLong,
		)
	}
	if len(mood) > entity.MaxEntryMoodLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryMoodTooLong,
			fmt.Sprintf("mood must not exceed %d characters", entity.MaxEntryMoodLength),
			domainerror.ErrEntryMoodTooLong,
		)
	}
	return nil
}
