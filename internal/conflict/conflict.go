package conflict

import (
	"fmt"
	"strings"
)

// Merge conflict marker prefixes as git writes them. Only the prefix is
// matched - trailing annotation (branch names, stash labels) is ignored.
const (
	MarkerStart     = "<<<<<<<"
	MarkerSeparator = "======="
	MarkerEnd       = ">>>>>>>"
)

type Strategy int

const (
	KeepOurs Strategy = iota
	KeepTheirs
	KeepBoth
	DropAll
)

func (s Strategy) String() string {
	switch s {
	case KeepOurs:
		return "ours"
	case KeepTheirs:
		return "theirs"
	case KeepBoth:
		return "both"
	case DropAll:
		return "none"
	}
	return "unknown"
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "ours":
		return KeepOurs, nil
	case "theirs":
		return KeepTheirs, nil
	case "both":
		return KeepBoth, nil
	case "none":
		return DropAll, nil
	}
	return KeepOurs, fmt.Errorf("unknown strategy %q (want ours, theirs, both or none)", name)
}

// Block is one conflict region delimited by the three marker lines.
type Block struct {
	StartLine   int // 1-based line number of the <<<<<<< marker
	SepLine     int
	EndLine     int // line number of the >>>>>>> marker, 0 if the block runs to EOF
	OursLabel   string
	TheirsLabel string
	Ours        []string
	Theirs      []string
}
