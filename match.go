package pergrex

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
)

// FileMatch bundles an optional source path with the matches found in it.
// Path is empty when the matches came from an in-memory string rather than
// a scanned file.
type FileMatch struct {
	Path    string
	Matches []Match
}

// Count returns the number of matches found in this file.
func (fm FileMatch) Count() int {
	return len(fm.Matches)
}

// PrintMatches writes fm's matches to stdout as highlighted excerpts, one
// per line: the file path on its own line, then "LINE  prefix<match>suffix"
// per match, with the matched span in red and the line number in green,
// left-padded to the width of the largest line number in this file.
//
// context sets how many lines of unhighlighted text to print before and
// after each matching line (0 disables context entirely). Reads the
// backing file once to pull context lines; a read failure is reported via
// the returned error rather than a partial print.
func (fm FileMatch) PrintMatches(context int) error {
	if len(fm.Matches) == 0 {
		return nil
	}
	if fm.Path == "" {
		return nil
	}

	lines, err := readLines(fm.Path)
	if err != nil {
		return err
	}

	fmt.Println(color.BlueString(fm.Path))

	width := lineNumberWidth(fm.Matches)
	printed := make(map[int]bool)

	for _, m := range fm.Matches {
		if context > 0 {
			for l := m.Line - context; l < m.Line; l++ {
				printContextLine(l, width, lines, printed)
			}
		}

		if m.Line < 0 || m.Line >= len(lines) {
			continue
		}
		line := lines[m.Line]
		before, matched, after := line, "", ""
		if m.Start <= len(line) && m.End <= len(line) && m.Start <= m.End {
			before, matched, after = line[:m.Start], line[m.Start:m.End], line[m.End:]
		}
		fmt.Printf("%s %s%s%s\n",
			color.GreenString(fmt.Sprintf("%*d", width, m.Line+1)),
			before, color.RedString(matched), after)
		printed[m.Line] = true

		if context > 0 {
			for l := m.Line + 1; l <= m.Line+context; l++ {
				printContextLine(l, width, lines, printed)
			}
		}
	}
	return nil
}

// PrintCount writes a single "path: count" line to stdout, the reporting
// format for the CLI's count-only (-c) mode.
func (fm FileMatch) PrintCount() {
	fmt.Printf("%s: %d\n", fm.Path, fm.Count())
}

func lineNumberWidth(matches []Match) int {
	width := 1
	for _, m := range matches {
		if w := len(strconv.Itoa(m.Line + 1)); w > width {
			width = w
		}
	}
	return width
}

func printContextLine(lineNum, width int, lines []string, printed map[int]bool) {
	if lineNum < 0 || lineNum >= len(lines) || printed[lineNum] {
		return
	}
	fmt.Printf("%*d %s\n", width, lineNum+1, lines[lineNum])
	printed[lineNum] = true
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
