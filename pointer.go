package jsonschema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// Pointer is a segmented JSON Pointer (RFC 6901). The zero value is the
// empty pointer, referring to the document root.
type Pointer struct {
	segments []string
}

// RootPointer is the empty pointer, referring to the document root.
func RootPointer() Pointer {
	return Pointer{}
}

// ParsePointer accepts any of "/", "#", "#/...", "/..." and produces the
// canonical segment sequence. The root form (empty string, "/" or "#")
// yields the empty sequence.
func ParsePointer(s string) Pointer {
	s = strings.TrimPrefix(s, "#")
	if s == "" || s == "/" {
		return Pointer{}
	}
	return Pointer{segments: jsonpointer.Parse(s)}
}

// Segments returns the pointer's raw, unescaped segments.
func (p Pointer) Segments() []string {
	return p.segments
}

// Join appends one plain (unescaped) segment and returns the extended
// pointer. The receiver is left unmodified.
func (p Pointer) Join(seg string) Pointer {
	next := make([]string, len(p.segments)+1)
	copy(next, p.segments)
	next[len(p.segments)] = seg
	return Pointer{segments: next}
}

// JoinIndex appends an array index segment.
func (p Pointer) JoinIndex(i int) Pointer {
	return p.Join(strconv.Itoa(i))
}

// ToURI renders the pointer in URI-fragment form, "#/a/b/0", with RFC 6901
// (`~0`/`~1`) escaping. The root pointer renders as "#".
func (p Pointer) ToURI() string {
	if len(p.segments) == 0 {
		return "#"
	}
	return "#" + jsonpointer.Format(p.segments...)
}

// ToRFC6901 renders the pointer in plain RFC 6901 form, "/a/b/0". The root
// pointer renders as "" (the empty pointer).
func (p Pointer) ToRFC6901() string {
	if len(p.segments) == 0 {
		return ""
	}
	return jsonpointer.Format(p.segments...)
}

// String implements fmt.Stringer using the URI-fragment form, the form
// every error payload in this package renders pointers with.
func (p Pointer) String() string {
	return p.ToURI()
}

// ToFunID joins an authority and this pointer's segments with a stable
// separator. It is injective for distinct (authority, pointer) pairs and
// is the only way validator identifiers are minted, so two nodes sharing
// an authority and pointer always resolve to the same identifier.
func (p Pointer) ToFunID(authority string) string {
	// Escape '~' and the '#' separator inside the parts so that no two
	// distinct pairs can render to the same string.
	esc := strings.NewReplacer("~", "~0", "#", "~2")
	var b strings.Builder
	b.WriteString(esc.Replace(authority))
	for _, seg := range p.segments {
		b.WriteByte('#')
		b.WriteString(esc.Replace(seg))
	}
	return b.String()
}

// Equal reports whether two pointers have identical segment sequences.
func (p Pointer) Equal(other Pointer) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// IsRoot reports whether the pointer refers to the document root.
func (p Pointer) IsRoot() bool {
	return len(p.segments) == 0
}
