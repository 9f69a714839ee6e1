package utils

import (
	"errors"
	"io"
)

var ErrTooLarge = errors.New("input exceeds size limit")

// ReadAllLimit reads at most limit bytes and fails if the reader holds
// more, instead of silently truncating.
func ReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, ErrTooLarge
	}
	return b, nil
}
