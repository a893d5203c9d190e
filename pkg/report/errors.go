// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
)

var ErrInvalidFormat = errors.New("invalid output format")

// ReadError is returned when the report tree or one of its files cannot be
// read. It aborts the whole collection.
type ReadError struct {
	Path string
	Err  error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("reading report %q: %s", e.Path, e.Err)
}

func (e ReadError) Unwrap() error {
	return e.Err
}
