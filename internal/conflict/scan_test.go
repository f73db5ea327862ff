package conflict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conflicted = "{\"a\": 1,\n<<<<<<< HEAD\n\"b\": 2\n=======\n\"b\": 3\n>>>>>>> branch\n}"

func TestSplitPreservesLineEndings(t *testing.T) {
	lines := Split("a\r\nb\n c")
	require.Equal(t, []string{"a\r\n", "b\n", " c"}, lines)
	assert.Equal(t, "a\r\nb\n c", strings.Join(lines, ""))

	assert.Nil(t, Split(""))
	assert.Equal(t, []string{"x\n"}, Split("x\n"))
}

func TestScanSingleBlock(t *testing.T) {
	blocks := Scan(Split(conflicted))
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, 2, block.StartLine)
	assert.Equal(t, 4, block.SepLine)
	assert.Equal(t, 6, block.EndLine)
	assert.Equal(t, "HEAD", block.OursLabel)
	assert.Equal(t, "branch", block.TheirsLabel)
	assert.Equal(t, []string{"\"b\": 2\n"}, block.Ours)
	assert.Equal(t, []string{"\"b\": 3\n"}, block.Theirs)
}

func TestScanIndentedMarkers(t *testing.T) {
	input := "  <<<<<<< Updated upstream\nours\n  =======\ntheirs\n  >>>>>>> Stashed changes\n"
	blocks := Scan(Split(input))
	require.Len(t, blocks, 1)
	assert.Equal(t, "Updated upstream", blocks[0].OursLabel)
	assert.Equal(t, "Stashed changes", blocks[0].TheirsLabel)
}

func TestResolveKeepOurs(t *testing.T) {
	kept, resolved := Resolve(Split(conflicted), KeepOurs)
	assert.Equal(t, 1, resolved)
	assert.Equal(t, "{\"a\": 1,\n\"b\": 2\n}", strings.Join(kept, ""))
}

func TestResolveStrategies(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{KeepOurs, "{\"a\": 1,\n\"b\": 2\n}"},
		{KeepTheirs, "{\"a\": 1,\n\"b\": 3\n}"},
		{KeepBoth, "{\"a\": 1,\n\"b\": 2\n\"b\": 3\n}"},
		{DropAll, "{\"a\": 1,\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			kept, resolved := Resolve(Split(conflicted), tt.strategy)
			assert.Equal(t, 1, resolved)
			assert.Equal(t, tt.want, strings.Join(kept, ""))
		})
	}
}

func TestResolveNoMarkers(t *testing.T) {
	input := "{\n  \"a\": 1\n}\n"
	kept, resolved := Resolve(Split(input), KeepOurs)
	assert.Equal(t, 0, resolved)
	assert.Equal(t, input, strings.Join(kept, ""))
}

func TestResolveTwoBlocks(t *testing.T) {
	input := "start\n" +
		"<<<<<<< HEAD\nfirst ours\n=======\nfirst theirs\n>>>>>>> other\n" +
		"middle\n" +
		"<<<<<<< HEAD\nsecond ours\n=======\nsecond theirs\n>>>>>>> other\n" +
		"end\n"

	kept, resolved := Resolve(Split(input), KeepOurs)
	assert.Equal(t, 2, resolved)
	assert.Equal(t, "start\nfirst ours\nmiddle\nsecond ours\nend\n", strings.Join(kept, ""))
}

func TestResolveMissingSeparator(t *testing.T) {
	// A start marker with no separator before EOF is kept verbatim so no
	// content is silently lost.
	input := "{\n<<<<<<< HEAD\n\"a\": 1\n}\n"
	kept, resolved := Resolve(Split(input), KeepOurs)
	assert.Equal(t, 0, resolved)
	assert.Equal(t, input, strings.Join(kept, ""))
}

func TestResolveSeparatorWithoutEndMarker(t *testing.T) {
	input := "keep\n<<<<<<< HEAD\nours\n=======\ntheirs one\ntheirs two"
	kept, resolved := Resolve(Split(input), KeepOurs)
	assert.Equal(t, 1, resolved)
	assert.Equal(t, "keep\nours\n", strings.Join(kept, ""))

	blocks := Scan(Split(input))
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].EndLine)
	assert.Equal(t, []string{"theirs one\n", "theirs two"}, blocks[0].Theirs)
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.json")
	out := filepath.Join(dir, "data_fixed.json")
	require.NoError(t, os.WriteFile(in, []byte(conflicted), 0644))

	resolved, err := ResolveFile(in, out, KeepOurs)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\": 1,\n\"b\": 2\n}", string(data))
}

func TestResolveFileMissingInput(t *testing.T) {
	_, err := ResolveFile(filepath.Join(t.TempDir(), "missing.json"), "out.json", KeepOurs)
	assert.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"ours":   KeepOurs,
		"theirs": KeepTheirs,
		"both":   KeepBoth,
		"none":   DropAll,
		"OURS":   KeepOurs,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStrategy("mine")
	assert.Error(t, err)
}
