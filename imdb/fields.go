package imdb

import "bytes"

const (
	tab   = '\t'
	comma = ','
)

// notAvailable is the dump sentinel for an absent value.
var notAvailable = []byte(`\N`)

// fields iterates over the tab-separated fields of one line without allocating.
type fields struct {
	rest []byte
	done bool
}

func newFields(line []byte) fields {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return fields{rest: line}
}

// next returns the next field or ErrUnexpectedEOF once the line is exhausted.
func (f *fields) next() ([]byte, error) {
	if f.done {
		return nil, ErrUnexpectedEOF
	}

	i := bytes.IndexByte(f.rest, tab)
	if i < 0 {
		f.done = true
		return f.rest, nil
	}

	field := f.rest[:i]
	f.rest = f.rest[i+1:]

	return field, nil
}

// parseUint decodes an unsigned decimal of at most bits width.
func parseUint(b []byte, bits uint) (uint64, bool) {
	if len(b) == 0 {
		return 0, false
	}

	limit := ^uint64(0) >> (64 - bits)

	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}

		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, false
		}

		n = n*10 + d
	}

	return n, true
}

// parseOptionalUint16 decodes an optional 16-bit field; nil means the sentinel was present.
func parseOptionalUint16(b []byte, sentinel error) (*uint16, error) {
	if bytes.Equal(b, notAvailable) {
		return nil, nil
	}

	n, ok := parseUint(b, 16)
	if !ok {
		return nil, fieldError(sentinel, b)
	}

	v := uint16(n)

	return &v, nil
}
