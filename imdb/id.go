package imdb

import "fmt"

// TitleID is the canonical numeric form of an IMDb identifier such as tt0133093.
//
// Padding is not part of the identity: tt0000123 and tt123 are the same TitleID.
type TitleID uint64

// ParseTitleID decodes "tt" followed by one or more decimal digits.
func ParseTitleID(b []byte) (TitleID, error) {
	if len(b) < 3 || b[0] != 't' || b[1] != 't' {
		return 0, fieldError(ErrInvalidIdentifier, b)
	}

	n, ok := parseUint(b[2:], 64)
	if !ok {
		return 0, fieldError(ErrInvalidIdentifier, b)
	}

	return TitleID(n), nil
}

// MustParseTitleID is like ParseTitleID but panics on error. Intended for tests and constants.
func MustParseTitleID(s string) TitleID {
	id, err := ParseTitleID([]byte(s))
	if err != nil {
		panic(err)
	}

	return id
}

// String renders the identifier with the seven digit padding used by IMDb.
func (id TitleID) String() string {
	return fmt.Sprintf("tt%07d", uint64(id))
}

// URL returns the IMDb page of the title.
func (id TitleID) URL() string {
	return "https://www.imdb.com/title/" + id.String() + "/"
}

// MarshalText implements encoding.TextMarshaler.
func (id TitleID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TitleID) UnmarshalText(text []byte) error {
	v, err := ParseTitleID(text)
	if err != nil {
		return err
	}

	*id = v

	return nil
}
