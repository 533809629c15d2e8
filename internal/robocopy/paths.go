// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// isAbsolute reports whether p needs no resolving: a UNC path, anything with
// a drive or device colon, or a path rooted on the current platform.
func isAbsolute(p string) bool {
	return strings.HasPrefix(p, `\\`) || strings.Contains(p, ":") || filepath.IsAbs(p)
}

// toAbsolutePath resolves p against the working directory unless it is already absolute.
func toAbsolutePath(p string) (string, error) {
	if isAbsolute(p) {
		return p, nil
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrResolvePath, p, err)
	}

	return abs, nil
}

// resolveAgainst joins p onto base unless p is a UNC path or contains a colon.
// Both separators are accepted and "." and ".." elements are resolved.
func resolveAgainst(base, p string) string {
	if strings.HasPrefix(p, `\\`) || strings.Contains(p, ":") {
		return p
	}

	b := strings.ReplaceAll(base, `\`, "/")
	joined := path.Join(b, strings.ReplaceAll(p, `\`, "/"))

	// path.Join collapses the leading double slash of a UNC base.
	if strings.HasPrefix(b, "//") && !strings.HasPrefix(joined, "//") {
		joined = "/" + joined
	}

	return joined
}

// toWindowsPath converts separators to backslashes, trims surrounding
// whitespace and removes one trailing backslash.
func toWindowsPath(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "/", `\`))

	return strings.TrimSuffix(p, `\`)
}

func qualify(p string) string {
	return `"` + p + `"`
}

// excludeDirArgs renders the /xd arguments. Unless relative is set, every
// directory is resolved against the source and then the destination and
// duplicates are dropped, keeping the first occurrence.
func excludeDirArgs(dirs []string, source, destination string, relative bool) []string {
	var resolved []string

	if relative {
		resolved = dirs
	} else {
		resolved = make([]string, 0, len(dirs)*2)
		for _, base := range []string{source, destination} {
			for _, d := range dirs {
				r := resolveAgainst(base, d)
				if !slices.Contains(resolved, r) {
					resolved = append(resolved, r)
				}
			}
		}
	}

	args := make([]string, len(resolved))
	for i, d := range resolved {
		args[i] = qualify(toWindowsPath(d))
	}

	return args
}
