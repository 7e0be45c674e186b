package rcclient

import (
	"runtime"
	"strings"
)

// Extended-length path markers the daemon may put in front of drive-letter paths.
const (
	extendedPrefixSlash     = `//?/`
	extendedPrefixBackslash = `\\?\`
)

// transferPathFields are the fields of each transferred entry that hold filesystem roots.
var transferPathFields = []string{"dstFs", "srcFs"}

// DriveLetterPlatform reports whether the running OS roots filesystems at drive letters.
func DriveLetterPlatform() bool {
	return runtime.GOOS == "windows"
}

// NormalizeExtendedPath strips a leading extended-length path marker.
// Anything else is returned unchanged.
func NormalizeExtendedPath(p string) string {
	if strings.HasPrefix(p, extendedPrefixSlash) || strings.HasPrefix(p, extendedPrefixBackslash) {
		return p[len(extendedPrefixSlash):]
	}
	return p
}

// NormalizeTransferPaths rewrites srcFs and dstFs of every transferred entry
// of a decoded core/transferred document with NormalizeExtendedPath.
// The document is modified in place and returned. Anything that is not
// shaped like {"transferred":[{...}]} is left alone, as are non-string fields.
func NormalizeTransferPaths(doc any) any {
	root, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	transferred, ok := root["transferred"].([]any)
	if !ok {
		return doc
	}

	for _, item := range transferred {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, field := range transferPathFields {
			if s, ok := entry[field].(string); ok {
				entry[field] = NormalizeExtendedPath(s)
			}
		}
	}
	return doc
}
