// SPDX-License-Identifier: MPL-2.0

// modlint enforces the style conventions of a proof-library source tree:
// line length, forbidden placeholders, copyright headers, trailing
// whitespace, and line endings, with a committed exception table for
// grandfathered violations.
package main

import (
	cmd "modlint/cmd/modlint"
)

func main() {
	cmd.Execute()
}
