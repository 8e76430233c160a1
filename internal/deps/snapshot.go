// Package deps detects unstable (snapshot) dependencies before a release.
package deps

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Checker aggregates the set of unstable dependency identifiers of a
// project. Implementations may run their checks concurrently but present a
// single synchronous result.
type Checker interface {
	Unstable(ctx context.Context) ([]string, error)
}

// ManifestChecker scans dependency manifest files for version identifiers
// carrying the snapshot suffix. Each manifest is scanned in its own
// goroutine; results are merged and sorted.
type ManifestChecker struct {
	// Root is the directory manifest paths are resolved against.
	Root string
	// Manifests are the files to scan, relative to Root.
	Manifests []string
	// Suffix marks an unstable version, e.g. "-SNAPSHOT".
	Suffix string
}

// NewManifestChecker creates a checker over the given manifests.
func NewManifestChecker(root string, manifests []string, suffix string) *ManifestChecker {
	return &ManifestChecker{Root: root, Manifests: manifests, Suffix: suffix}
}

// Unstable returns the sorted set of unstable dependency identifiers found
// in the manifests. Missing manifests are skipped; read failures are not.
func (c *ManifestChecker) Unstable(ctx context.Context) ([]string, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		found    []string
		firstErr error
	)

	for _, manifest := range c.Manifests {
		wg.Add(1)
		go func(manifest string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			ids, err := c.scanManifest(manifest)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			found = append(found, ids...)
		}(manifest)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Strings(found)
	return dedupe(found), nil
}

func (c *ManifestChecker) scanManifest(manifest string) ([]string, error) {
	path := filepath.Join(c.Root, manifest)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open manifest %s: %w", manifest, err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if strings.HasSuffix(field, c.Suffix) {
				ids = append(ids, fmt.Sprintf("%s (%s)", strings.Join(strings.Fields(line), " "), manifest))
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan manifest %s: %w", manifest, err)
	}

	return ids, nil
}

func dedupe(in []string) []string {
	out := in[:0]
	var prev string
	for i, s := range in {
		if i == 0 || s != prev {
			out = append(out, s)
		}
		prev = s
	}
	return out
}
