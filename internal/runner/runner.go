// Package runner parses pergrex's command-line flags.
package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed command-line flags for a single pergrex
// invocation.
type Options struct {
	Pattern    string
	Globs      goflags.StringSlice
	Path       string
	IgnoreCase bool
	Count      bool
	Context    int
	Recursive  bool
	Verbose    bool
	Silent     bool
}

// ParseFlags parses os.Args into Options, exiting the process via
// gologger.Fatal on an unusable flag set (matching the teacher CLI's own
// fail-fast convention). Path is taken as a named flag rather than a
// positional argument: goflags, the CLI library this module's domain stack
// specifies, has no positional-argument support in the examples this
// project was grounded on, so PATH becomes "-path" instead of spec.md's
// bare positional — still exactly one required value, just spelled as a
// flag (see DESIGN.md).
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("pergrex - a grep-like search tool built on a hand-rolled regex engine.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "regular expression to search for (required)"),
		flagSet.StringSliceVarP(&opts.Globs, "glob", "g", nil, "glob pattern(s) selecting files to scan (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Path, "path", "t", "", "root path to search (required)"),
	)

	flagSet.CreateGroup("search", "Search",
		flagSet.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching"),
		flagSet.BoolVarP(&opts.Count, "count", "c", false, "print per-file match counts instead of excerpts"),
		flagSet.IntVarP(&opts.Context, "context", "C", 0, "lines of context to print before/after each match"),
		flagSet.BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories of PATH"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose diagnostic output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "suppress all diagnostic output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("pergrex: could not parse flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("pergrex: -pattern is required\n")
	}
	if opts.Path == "" {
		gologger.Fatal().Msgf("pergrex: -path is required\n")
	}
	if len(opts.Globs) == 0 {
		opts.Globs = goflags.StringSlice{"*"}
	}

	return opts
}
