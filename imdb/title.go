package imdb

import "fmt"

// Title is one decoded row of title.basics.tsv.
type Title struct {
	ID             TitleID
	Type           TitleType
	PrimaryTitle   string
	OriginalTitle  string
	IsAdult        bool
	StartYear      *uint16
	EndYear        *uint16
	RuntimeMinutes *uint16
	Genres         Genres
}

// Classification is shorthand for t.Type.Classification().
func (t *Title) Classification() Classification { return t.Type.Classification() }

// Year returns the start year, or 0 when it is unknown.
func (t *Title) Year() uint16 {
	if t.StartYear == nil {
		return 0
	}

	return *t.StartYear
}

func (t *Title) String() string {
	if t.StartYear == nil {
		return fmt.Sprintf("%s %s (%s)", t.ID, t.PrimaryTitle, t.Type)
	}

	return fmt.Sprintf("%s %s (%d, %s)", t.ID, t.PrimaryTitle, *t.StartYear, t.Type)
}

// ParseTitle decodes one title.basics.tsv line.
//
// Titles of classification Other are returned with only ID and Type set and
// a nil error; the remaining fields are not decoded.
func ParseTitle(line []byte) (Title, error) {
	f := newFields(line)

	raw, err := f.next()
	if err != nil {
		return Title{}, err
	}

	id, err := ParseTitleID(raw)
	if err != nil {
		return Title{}, err
	}

	if raw, err = f.next(); err != nil {
		return Title{}, err
	}

	typ, err := ParseTitleType(raw)
	if err != nil {
		return Title{}, err
	}

	t := Title{ID: id, Type: typ}
	if typ.Classification() == Other {
		return t, nil
	}

	primary, err := f.next()
	if err != nil {
		return Title{}, err
	}

	original, err := f.next()
	if err != nil {
		return Title{}, err
	}

	t.PrimaryTitle = string(primary)
	if string(original) == t.PrimaryTitle {
		t.OriginalTitle = t.PrimaryTitle
	} else {
		t.OriginalTitle = string(original)
	}

	if raw, err = f.next(); err != nil {
		return Title{}, err
	}

	switch string(raw) {
	case "0":
	case "1":
		t.IsAdult = true
	default:
		return Title{}, fieldError(ErrInvalidAdultFlag, raw)
	}

	optional := []struct {
		dst      **uint16
		sentinel error
	}{
		{&t.StartYear, ErrInvalidYear},
		{&t.EndYear, ErrInvalidEndYear},
		{&t.RuntimeMinutes, ErrInvalidRuntime},
	}

	for _, o := range optional {
		if raw, err = f.next(); err != nil {
			return Title{}, err
		}

		if *o.dst, err = parseOptionalUint16(raw, o.sentinel); err != nil {
			return Title{}, err
		}
	}

	if raw, err = f.next(); err != nil {
		return Title{}, err
	}

	if t.Genres, err = ParseGenres(raw); err != nil {
		return Title{}, err
	}

	return t, nil
}
