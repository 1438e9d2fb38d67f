package glob

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
)

// entry is one unit of BFS work: either a directory still to be read, or
// a file ready to be tested against the pattern.
type entry struct {
	path  string
	isDir bool
}

// Walk performs a breadth-first traversal rooted at root, testing every
// regular file's path (relative to root, using '/' separators) against
// pattern. recursive controls whether the walk descends into
// subdirectories at all; when false, only root's immediate entries are
// considered. When root is itself a regular file, its base name is tested.
//
// A directory that cannot be read is logged via gologger.Warning and
// skipped rather than aborting the whole walk, per this tool's IoFailure
// policy (the original implementation aborts on the first unreadable
// directory; a long-running CLI tool should keep going).
func Walk(root string, m *Matcher, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	var matches []string

	if !info.IsDir() {
		if m.MatchString(filepath.Base(root)) {
			matches = append(matches, root)
		}
		return matches, nil
	}

	queue := []entry{{path: root, isDir: true}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !cur.isDir {
			rel, err := filepath.Rel(root, cur.path)
			if err != nil {
				rel = cur.path
			}
			if m.MatchString(filepath.ToSlash(rel)) {
				matches = append(matches, cur.path)
			}
			continue
		}

		entries, err := os.ReadDir(cur.path)
		if err != nil {
			gologger.Warning().Msgf("glob: cannot read directory %s: %v", cur.path, err)
			continue
		}

		for _, de := range entries {
			childPath := filepath.Join(cur.path, de.Name())
			if de.IsDir() {
				if recursive {
					queue = append(queue, entry{path: childPath, isDir: true})
				}
				continue
			}
			queue = append(queue, entry{path: childPath, isDir: false})
		}
	}

	return matches, nil
}
