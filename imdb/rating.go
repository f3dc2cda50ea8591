package imdb

import (
	"bytes"
	"fmt"
)

// Rating is an average rating scaled by ten (8.4 is stored as 84) and its vote count.
type Rating struct {
	Score uint8
	Votes uint64
}

// Value returns the rating on the original 0-10 scale.
func (r Rating) Value() float64 { return float64(r.Score) / 10 }

func (r Rating) String() string {
	return fmt.Sprintf("%d.%d (%d votes)", r.Score/10, r.Score%10, r.Votes)
}

// ParseRating decodes one title.ratings.tsv line.
func ParseRating(line []byte) (TitleID, Rating, error) {
	f := newFields(line)

	raw, err := f.next()
	if err != nil {
		return 0, Rating{}, err
	}

	id, err := ParseTitleID(raw)
	if err != nil {
		return 0, Rating{}, err
	}

	if raw, err = f.next(); err != nil {
		return 0, Rating{}, err
	}

	score, err := parseScore(raw)
	if err != nil {
		return 0, Rating{}, err
	}

	if raw, err = f.next(); err != nil {
		return 0, Rating{}, err
	}

	votes, ok := parseUint(raw, 64)
	if !ok {
		return 0, Rating{}, fieldError(ErrInvalidVoteCount, raw)
	}

	return id, Rating{Score: score, Votes: votes}, nil
}

// parseScore decodes "D.D" or "DD.D" into tenths, rejecting values above 10.0.
func parseScore(b []byte) (uint8, error) {
	dot := bytes.IndexByte(b, '.')
	if dot < 1 || dot != len(b)-2 {
		return 0, fieldError(ErrInvalidRating, b)
	}

	whole, ok := parseUint(b[:dot], 8)
	if !ok {
		return 0, fieldError(ErrInvalidRating, b)
	}

	frac := b[dot+1]
	if frac < '0' || frac > '9' {
		return 0, fieldError(ErrInvalidRating, b)
	}

	score := whole*10 + uint64(frac-'0')
	if score > 100 {
		return 0, fieldError(ErrInvalidRating, b)
	}

	return uint8(score), nil
}
