package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node below a root. Each step is either an object field
// or a collection index.
//
// The string form is "$" followed by ".field" and "[index]" steps; fields
// containing any of '.[]$ are single-quoted.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrBadPath, p)
	}
	if len(p) == 1 {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return err
		}
		index := int(u64)
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the node at path p below n. Index steps match collection
// children by name, so sparse collections resolve only indices that are
// present.
func (n *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := n
	for x := path; x != nil; x = x.Next {
		var name string
		switch {
		case x.Index != nil:
			if !res.Collection {
				return nil, fmt.Errorf("%w: %s: expected collection at %q", ErrNotFound, p, res.Name)
			}
			name = strconv.Itoa(*x.Index)
		case x.Field != nil:
			if !res.IsObject() {
				return nil, fmt.Errorf("%w: %s: expected object at %q", ErrNotFound, p, res.Name)
			}
			name = *x.Field
		default:
			continue
		}
		child := res.Child(name)
		if child == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		res = child
	}
	return res, nil
}
