// Package entity contains the core business objects of the project.
package entity

// Namespace identifies the disjoint identity space a principal id belongs to.
// Owner ids and renter ids are assigned independently and are never interchangeable.
type Namespace string

const (
	// NamespaceOwner is the identity space of principals who list items.
	NamespaceOwner Namespace = "owner"
	// NamespaceRenter is the identity space of principals who rent items.
	NamespaceRenter Namespace = "renter"
)

// String returns the string representation of the Namespace.
func (n Namespace) String() string {
	return string(n)
}

// IsValid checks if the Namespace is a known value.
func (n Namespace) IsValid() bool {
	switch n {
	case NamespaceOwner, NamespaceRenter:
		return true
	default:
		return false
	}
}
