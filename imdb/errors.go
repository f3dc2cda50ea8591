package imdb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when a line has fewer fields than required.
	ErrUnexpectedEOF = errors.New("unexpected end of record")

	// ErrInvalidIdentifier is returned for identifiers that are not "tt" followed by digits.
	ErrInvalidIdentifier = errors.New("invalid title identifier")

	// ErrInvalidClassification is returned for unknown title types.
	ErrInvalidClassification = errors.New("invalid title type")

	// ErrInvalidAdultFlag is returned when the adult field is neither "0" nor "1".
	ErrInvalidAdultFlag = errors.New("invalid adult flag")

	// ErrInvalidYear is returned when the start year is not a 16-bit cardinal.
	ErrInvalidYear = errors.New("invalid start year")

	// ErrInvalidEndYear is returned when the end year is not a 16-bit cardinal.
	ErrInvalidEndYear = errors.New("invalid end year")

	// ErrInvalidRuntime is returned when the runtime is not a 16-bit cardinal.
	ErrInvalidRuntime = errors.New("invalid runtime minutes")

	// ErrInvalidGenre is returned for unknown genre tags.
	ErrInvalidGenre = errors.New("invalid genre")

	// ErrInvalidRating is returned for malformed average ratings.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidVoteCount is returned for malformed vote counts.
	ErrInvalidVoteCount = errors.New("invalid vote count")

	// ErrDuplicateIdentifier is matched by every DuplicateIDError.
	ErrDuplicateIdentifier = errors.New("duplicate title identifier")
)

// DuplicateIDError reports an identifier that was inserted twice into the
// same catalog shard or ratings table.
type DuplicateIDError struct {
	ID TitleID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate title identifier: %s", e.ID)
}

// Is reports whether target is ErrDuplicateIdentifier.
func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateIdentifier }

// fieldError attaches the offending raw value to a sentinel.
func fieldError(sentinel error, raw []byte) error {
	return fmt.Errorf("%w: %q", sentinel, raw)
}
