package jsonfix

import (
	"os"
	"strings"

	"github.com/corpeningc/jfix/internal/conflict"
)

// FixResult reports what FixFile did to a file.
type FixResult struct {
	Path       string
	Conflicts  int    // conflict blocks resolved
	Normalized bool   // textual repair rules were needed
	Sidecar    string // set when the result still failed to parse
	ParseErr   error  // parse error behind the sidecar
}

func (r *FixResult) Fixed() bool {
	return r.Sidecar == ""
}

// FixFile strips conflict markers from the file at path, keeping the
// "ours" side of every block, then parses the remainder as JSON and
// rewrites the file pretty-printed. If the text cannot be parsed even
// after normalization, the cleaned text is written to path+".fixed" for
// manual review and the original file is left untouched.
func FixFile(path string) (*FixResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	kept, resolved := conflict.Resolve(conflict.Split(string(data)), conflict.KeepOurs)
	text := strings.Join(kept, "")

	out, normalized, parseErr := Repair(text)
	result := &FixResult{
		Path:       path,
		Conflicts:  resolved,
		Normalized: normalized,
	}

	if parseErr != nil {
		result.Sidecar = path + ".fixed"
		result.ParseErr = parseErr
		if err := os.WriteFile(result.Sidecar, out, 0644); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := writeFileAtomic(path, out, 0644); err != nil {
		return nil, err
	}
	return result, nil
}
