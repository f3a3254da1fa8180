package domain

import "strings"

// ProtocolKind is the kind of a handover protocol
type ProtocolKind string

const (
	// ProtocolKindMoveIn indicates a tenant moving in
	ProtocolKindMoveIn ProtocolKind = "move_in"
	// ProtocolKindMoveOut indicates a tenant moving out
	ProtocolKindMoveOut ProtocolKind = "move_out"
	// ProtocolKindInterim indicates a mid-tenancy inspection
	ProtocolKindInterim ProtocolKind = "interim"
)

// kindAliases maps the labels stored by the forms application to canonical kinds
var kindAliases = map[string]ProtocolKind{
	"move_in":  ProtocolKindMoveIn,
	"einzug":   ProtocolKindMoveIn,
	"move_out": ProtocolKindMoveOut,
	"auszug":   ProtocolKindMoveOut,
	"interim":  ProtocolKindInterim,
	"zwischen": ProtocolKindInterim,
}

// ParseProtocolKind normalizes a stored kind label.
// The second return value is false for labels that are not a known kind.
func ParseProtocolKind(label string) (ProtocolKind, bool) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(label))]
	return kind, ok
}

// Valid checks if the kind is one of the canonical kinds
func (k ProtocolKind) Valid() bool {
	switch k {
	case ProtocolKindMoveIn, ProtocolKindMoveOut, ProtocolKindInterim:
		return true
	default:
		return false
	}
}

// ProtocolKinds lists the canonical kinds in report order
var ProtocolKinds = []ProtocolKind{ProtocolKindMoveIn, ProtocolKindMoveOut, ProtocolKindInterim}
