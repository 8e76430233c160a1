// Package versionfile reads and rewrites the version declaration artifact:
// a single line of the form
//
//	version := "1.2.0"
//
// surrounded by the platform line terminator. The file is the durable
// record of the currently selected version and is rewritten, never
// appended, on every version change.
package versionfile

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
)

// LineSeparator returns the platform line terminator.
func LineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Write rewrites the version file with the given declaration and version.
func Write(path, declaration, version string) error {
	sep := LineSeparator()
	content := sep + fmt.Sprintf("%s := %q", declaration, version) + sep
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write version file %s: %w", path, err)
	}
	return nil
}

// Read extracts the version from the version file.
func Read(path, declaration string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file %s: %w", path, err)
	}

	pattern := regexp.MustCompile(regexp.QuoteMeta(declaration) + `\s*:=\s*"([^"]*)"`)
	m := pattern.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no %s declaration found in %s", declaration, path)
	}
	return string(m[1]), nil
}
