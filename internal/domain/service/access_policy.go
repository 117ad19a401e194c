package service

import "gearshare/internal/domain/entity"

// Resource kinds guarded by the access policy.
const (
	ResourceItem          = "item"
	ResourceRental        = "rental"
	ResourceOwnerProfile  = "owner_profile"
	ResourceRenterProfile = "renter_profile"
)

// Actions checked against the access policy.
const (
	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionListOwn = "list_own"
)

// AccessPolicy decides whether a namespace may perform an action on a resource kind.
// Instance ownership (owner_id = session id) is enforced by the storage predicates.
type AccessPolicy interface {
	Allowed(namespace entity.Namespace, resource, action string) (bool, error)
}
