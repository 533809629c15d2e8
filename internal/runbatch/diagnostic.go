// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"regexp"
	"strings"
)

// robocopy prints a dashed divider after its header and, on a fatal error,
// an ERROR block that may be followed by the usage text.
var diagnosticPattern = regexp.MustCompile(`[\s\S]*----[\s\S]*(ERROR\s*:?\s*[\s\S]*?)(Simple Usage|$)`)

// ExtractDiagnostic returns the last ERROR block that follows a dashed divider in stdout.
// The block ends at "Simple Usage" or at the end of the text and is returned trimmed.
func ExtractDiagnostic(stdout string) (string, bool) {
	m := diagnosticPattern.FindStringSubmatch(stdout)
	if m == nil {
		return "", false
	}

	return strings.TrimSpace(m[1]), true
}
