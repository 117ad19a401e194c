package entity

// Identity is the authenticated caller as proven by a verified session token.
type Identity struct {
	ID        int64
	Namespace Namespace
}

// Is reports whether the identity is the given principal of the given namespace.
func (i Identity) Is(namespace Namespace, id int64) bool {
	return i.Namespace == namespace && i.ID == id
}
