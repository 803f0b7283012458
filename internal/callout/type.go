package callout

// Type is the category of a custom block. It becomes the second CSS class of
// the wrapper element.
type Type string

const (
	Note      Type = "note"
	Tip       Type = "tip"
	Info      Type = "info"
	Warning   Type = "warning"
	Danger    Type = "danger"
	Highlight Type = "highlight"
)

var types = [...]Type{Note, Tip, Info, Warning, Danger, Highlight}

// Types returns every recognized block type in declaration order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types[:])

	return out
}

// ParseType reports whether s names a recognized block type. Matching is
// exact and case sensitive.
func ParseType(s string) (Type, bool) {
	for _, t := range types {
		if string(t) == s {
			return t, true
		}
	}

	return "", false
}

// Valid reports whether t is one of the recognized block types.
func (t Type) Valid() bool {
	_, ok := ParseType(string(t))

	return ok
}
