package pathchain

import "strings"

// Separator joins path segments. It is the only character with structural
// meaning; parsed segment names never contain it.
const Separator = "/"

// Path is one segment of a filesystem-style path. It has exactly two
// variants: a File, which always terminates the chain, and a Directory,
// which may continue into a further Path. Values are immutable once
// constructed, so they're safe to share across goroutines without locking.
type Path interface {
	// Name returns this segment's name. Names may be empty: the root is
	// an empty-named Directory.
	Name() string
	// Next returns the continuation of the chain, or nil when this
	// segment is terminal. A File has no continuation by construction.
	Next() Path
	// String renders the canonical form: every Directory contributes a
	// trailing separator, a File never does.
	String() string
}

// File is the terminal path variant.
type File struct {
	name string
}

// NewFile constructs a terminal path segment. Any name is accepted
// uncritically, including the empty string.
func NewFile(name string) Path {
	return File{name: name}
}

func (f File) Name() string { return f.name }

func (f File) Next() Path { return nil }

func (f File) String() string { return f.name }

// Directory is a path segment that may chain into a further Path.
type Directory struct {
	name string
	next Path
}

// NewDirectory constructs a directory segment. A nil next marks the
// directory as the final segment of the chain.
func NewDirectory(name string, next Path) Path {
	return Directory{name: name, next: next}
}

func (d Directory) Name() string { return d.name }

func (d Directory) Next() Path { return d.next }

func (d Directory) String() string {
	if d.next == nil {
		return d.name + Separator
	}
	return d.name + Separator + d.next.String()
}

// Parse converts a raw string into a Path. It is total: degenerate input
// resolves to a deterministic value rather than an error. Empty segments
// produced by leading, trailing, or doubled separators are discarded;
// empty input, or input of only separators, collapses to the root, an
// empty-named Directory with no continuation. A trailing separator makes
// the final segment a Directory, otherwise it is a File. A leading
// separator wraps the result in one extra empty-named Directory.
func Parse(raw string) Path {
	endsInFile := !strings.HasSuffix(raw, Separator)
	isAbsolute := strings.HasPrefix(raw, Separator)

	var tokens []string
	for _, t := range strings.Split(raw, Separator) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		// "" and "//" both land here. isAbsolute is deliberately not
		// consulted: the root renders as a single separator either way.
		return Directory{}
	}

	last := len(tokens) - 1
	var p Path
	if endsInFile {
		p = File{name: tokens[last]}
	} else {
		p = Directory{name: tokens[last]}
	}
	for i := last - 1; i >= 0; i-- {
		p = Directory{name: tokens[i], next: p}
	}
	if isAbsolute {
		p = Directory{next: p}
	}
	return p
}

// Shift returns one step of a walk over p: the current segment's name and
// the rest of the chain. rest is nil when p is terminal.
func Shift(p Path) (head string, rest Path) {
	return p.Name(), p.Next()
}

// Segments collects the segment names along the chain, in order. The bare
// root yields a single empty name.
func Segments(p Path) []string {
	var segs []string
	for ; p != nil; p = p.Next() {
		segs = append(segs, p.Name())
	}
	return segs
}
