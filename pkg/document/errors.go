// SPDX-License-Identifier: Apache-2.0

package document

import "fmt"

// StaleError is returned in check mode when the document does not match the
// collected results.
type StaleError struct {
	Path string
}

func (e StaleError) Error() string {
	return fmt.Sprintf("document %q is out of date, run 'perfdoc generate' to update it", e.Path)
}
