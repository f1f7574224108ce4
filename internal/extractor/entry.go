package extractor

import "fmt"

// EntryKind tags the variant of an Entry.
type EntryKind int

const (
	TypeEntry EntryKind = iota
	FieldEntry
	PropertyEntry
	MethodEntry
	StructEntry
)

func (k EntryKind) String() string {
	switch k {
	case TypeEntry:
		return "class"
	case FieldEntry:
		return "field"
	case PropertyEntry:
		return "property"
	case MethodEntry:
		return "method"
	case StructEntry:
		return "struct"
	default:
		return fmt.Sprintf("entry(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON output.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (k *EntryKind) UnmarshalText(text []byte) error {
	for _, candidate := range []EntryKind{TypeEntry, FieldEntry, PropertyEntry, MethodEntry, StructEntry} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown entry kind %q", text)
}

// Entry is one discovered declaration, prior to text rendering.
//
// Type holds the declared type for fields and properties and the return
// type for methods. It is empty for class and struct entries.
type Entry struct {
	Kind EntryKind `json:"kind"`
	Name string    `json:"name"`
	Type string    `json:"type,omitempty"`
	Line int       `json:"line"`
}
