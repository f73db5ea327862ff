package conflict

import (
	"fmt"
	"os"
	"strings"
)

// Split breaks text into lines, each keeping its own terminator, so that
// resolving conflicts never rewrites line endings.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isMarker(line, marker string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), marker)
}

func markerLabel(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), marker))
}

// Scan walks lines by index and collects every well-formed conflict block.
// A start marker with no separator before EOF is not a block - the marker
// line is treated as ordinary content so nothing after it is lost.
func Scan(lines []string) []Block {
	var blocks []Block

	i := 0
	for i < len(lines) {
		if !isMarker(lines[i], MarkerStart) {
			i++
			continue
		}

		sep := -1
		for j := i + 1; j < len(lines); j++ {
			if isMarker(lines[j], MarkerSeparator) {
				sep = j
				break
			}
		}
		if sep == -1 {
			i++
			continue
		}

		block := Block{
			StartLine: i + 1,
			SepLine:   sep + 1,
			OursLabel: markerLabel(lines[i], MarkerStart),
			Ours:      lines[i+1 : sep],
		}

		end := -1
		for k := sep + 1; k < len(lines); k++ {
			if isMarker(lines[k], MarkerEnd) {
				end = k
				break
			}
		}
		if end == -1 {
			block.Theirs = lines[sep+1:]
			blocks = append(blocks, block)
			break
		}

		block.EndLine = end + 1
		block.TheirsLabel = markerLabel(lines[end], MarkerEnd)
		block.Theirs = lines[sep+1 : end]
		blocks = append(blocks, block)
		i = end + 1
	}

	return blocks
}

// Resolve removes every conflict block from lines, keeping the sides the
// strategy selects. Lines outside conflict blocks are copied verbatim.
// Returns the kept lines and the number of blocks resolved.
func Resolve(lines []string, strategy Strategy) ([]string, int) {
	blocks := Scan(lines)

	var kept []string
	next := 0
	for _, block := range blocks {
		kept = append(kept, lines[next:block.StartLine-1]...)

		if strategy == KeepOurs || strategy == KeepBoth {
			kept = append(kept, block.Ours...)
		}
		if strategy == KeepTheirs || strategy == KeepBoth {
			kept = append(kept, block.Theirs...)
		}

		if block.EndLine == 0 {
			next = len(lines)
		} else {
			next = block.EndLine
		}
	}
	kept = append(kept, lines[next:]...)

	return kept, len(blocks)
}

// ResolveFile reads in, resolves its conflicts with the given strategy and
// writes the result to out. No JSON validation is attempted.
func ResolveFile(in, out string, strategy Strategy) (int, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return 0, err
	}

	kept, resolved := Resolve(Split(string(data)), strategy)

	if err := os.WriteFile(out, []byte(strings.Join(kept, "")), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}

	return resolved, nil
}
