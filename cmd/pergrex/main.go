// Command pergrex is a line-oriented grep-like search tool built on the
// pergrex regex engine and glob matcher.
package main

import (
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/pergrex"
	"github.com/coregx/pergrex/glob"
	"github.com/coregx/pergrex/internal/runner"
	"github.com/coregx/pergrex/simd"
)

func main() {
	opts := runner.ParseFlags()
	if opts.Verbose {
		gologger.Verbose().Msgf("cpu: %s", simd.FeatureSummary())
	}

	cfg := pergrex.DefaultConfig()
	cfg.IgnoreCase = opts.IgnoreCase

	// Compile once up front so a bad pattern fails fast with a clear error,
	// before any worker goroutines or file I/O start.
	if _, err := pergrex.CompileWithConfig(opts.Pattern, cfg); err != nil {
		gologger.Fatal().Msgf("pergrex: invalid pattern %q: %s\n", opts.Pattern, err)
	}

	files, err := matchFiles(opts)
	if err != nil {
		gologger.Fatal().Msgf("pergrex: %s\n", err)
	}
	if opts.Verbose {
		gologger.Verbose().Msgf("matched %d file(s): %s", len(files), strings.Join(files, ", "))
	}
	if len(files) == 0 {
		return
	}

	results := scanFiles(opts.Pattern, cfg, files)

	exitCode := 0
	for _, fm := range results {
		if fm == nil {
			continue
		}
		if opts.Count {
			fm.PrintCount()
			continue
		}
		if err := fm.PrintMatches(opts.Context); err != nil {
			gologger.Error().Msgf("pergrex: %s: %s\n", fm.Path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// matchFiles runs every glob pattern against opts.Path and returns the
// union of matched files in a stable, deterministic order (sorted by path)
// so that output ordering doesn't depend on which glob or directory entry
// the walker happened to visit first.
func matchFiles(opts *runner.Options) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range opts.Globs {
		m, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		matched, err := glob.Walk(opts.Path, m, opts.Recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range matched {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// scanFiles fans files out across runtime.GOMAXPROCS(0) worker goroutines.
// Each worker compiles its own Regex from the same pattern and Config
// rather than sharing one across goroutines, per this module's concurrency
// design: always build per-goroutine copies from the source pattern: never
// share a single constructed automaton's build-time state across threads.
// Results are collected into a slice indexed by the file's position in
// files, so output order is deterministic regardless of which worker
// finishes first or how many workers are running.
func scanFiles(pattern string, cfg pergrex.Config, files []string) []*pergrex.FileMatch {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	type job struct {
		index int
		path  string
	}

	jobs := make(chan job)
	results := make([]*pergrex.FileMatch, len(files))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			re, err := pergrex.CompileWithConfig(pattern, cfg)
			if err != nil {
				// The pattern was already validated in main; a failure
				// here would indicate a bug, not bad user input.
				gologger.Fatal().Msgf("pergrex: unexpected compile failure: %s\n", err)
			}

			for j := range jobs {
				fm, err := scanFile(re, j.path)
				if err != nil {
					gologger.Warning().Msgf("pergrex: %s: %s\n", j.path, err)
					continue
				}
				results[j.index] = fm
			}
		}()
	}

	for i, f := range files {
		jobs <- job{index: i, path: f}
	}
	close(jobs)
	wg.Wait()

	return results
}

func scanFile(re *pergrex.Regex, path string) (*pergrex.FileMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	matches := re.FindMatches(string(data))
	if len(matches) == 0 {
		return nil, nil
	}
	return &pergrex.FileMatch{Path: path, Matches: matches}, nil
}
