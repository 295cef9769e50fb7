package dvc

import "strings"

// Argument is the input shape of a dispatch operation: Empty, SingleFile or
// FileList. The set is closed; construct values with None, File and Files.
type Argument interface {
	paths() []string
}

// Empty is an argument with no paths.
type Empty struct{}

// SingleFile is an argument naming exactly one vault-relative path.
type SingleFile struct {
	Path string
}

// FileList is an argument naming several vault-relative paths, in order.
type FileList struct {
	Paths []string
}

func (Empty) paths() []string        { return nil }
func (a SingleFile) paths() []string { return []string{a.Path} }
func (a FileList) paths() []string   { return a.Paths }

// None returns the empty argument.
func None() Argument { return Empty{} }

// File returns a single-path argument.
func File(path string) Argument { return SingleFile{Path: path} }

// Files returns a path-list argument preserving the given order.
func Files(paths ...string) Argument { return FileList{Paths: paths} }

// Command is one composed invocation of the tool.
type Command struct {
	Tool      string
	Operation string
	Arg       Argument
}

// Build composes a command from a tool name, an opaque operation string
// (e.g. "push" or "gc -w -f") and an argument.
func Build(tool, operation string, arg Argument) Command {
	if arg == nil {
		arg = Empty{}
	}
	return Command{Tool: tool, Operation: operation, Arg: arg}
}

// Line renders the operation followed by each path independently quoted.
func (c Command) Line() string {
	parts := make([]string, 0, 1+len(c.Arg.paths()))
	if op := strings.TrimSpace(c.Operation); op != "" {
		parts = append(parts, op)
	}
	for _, p := range c.Arg.paths() {
		parts = append(parts, Quote(p))
	}
	return strings.Join(parts, " ")
}

// String renders the full command line including the tool name.
func (c Command) String() string {
	line := c.Line()
	if line == "" {
		return c.Tool
	}
	return c.Tool + " " + line
}

// Argv returns the argument vector passed to the tool. Paths are passed
// verbatim: the tool is spawned directly, never through a shell.
func (c Command) Argv() []string {
	argv := strings.Fields(c.Operation)
	return append(argv, c.Arg.paths()...)
}

// Quote wraps p in double quotes, backslash-escaping the characters a POSIX
// shell still interprets inside double quotes.
func Quote(p string) string {
	var b strings.Builder
	b.Grow(len(p) + 2)
	b.WriteByte('"')
	for _, r := range p {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
