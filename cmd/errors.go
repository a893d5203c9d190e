// SPDX-License-Identifier: Apache-2.0

package cmd

import "errors"

var errInvalidPayloads = errors.New("document contains invalid payloads")
