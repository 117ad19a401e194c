package auth

import (
	"testing"

	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasbinPolicy_Allowed(t *testing.T) {
	policy, err := NewCasbinPolicy()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		namespace entity.Namespace
		resource  string
		action    string
		allowed   bool
	}{
		{"owner creates item", entity.NamespaceOwner, service.ResourceItem, service.ActionCreate, true},
		{"owner updates item", entity.NamespaceOwner, service.ResourceItem, service.ActionUpdate, true},
		{"owner deletes item", entity.NamespaceOwner, service.ResourceItem, service.ActionDelete, true},
		{"owner lists own items", entity.NamespaceOwner, service.ResourceItem, service.ActionListOwn, true},
		{"owner reads own profile", entity.NamespaceOwner, service.ResourceOwnerProfile, service.ActionRead, true},
		{"owner cannot rent", entity.NamespaceOwner, service.ResourceRental, service.ActionCreate, false},
		{"owner cannot touch renter profile", entity.NamespaceOwner, service.ResourceRenterProfile, service.ActionUpdate, false},
		{"renter rents", entity.NamespaceRenter, service.ResourceRental, service.ActionCreate, true},
		{"renter lists rentals", entity.NamespaceRenter, service.ResourceRental, service.ActionListOwn, true},
		{"renter returns rental", entity.NamespaceRenter, service.ResourceRental, service.ActionDelete, true},
		{"renter deletes own profile", entity.NamespaceRenter, service.ResourceRenterProfile, service.ActionDelete, true},
		{"renter cannot create item", entity.NamespaceRenter, service.ResourceItem, service.ActionCreate, false},
		{"renter cannot delete item", entity.NamespaceRenter, service.ResourceItem, service.ActionDelete, false},
		{"renter cannot read owner profile", entity.NamespaceRenter, service.ResourceOwnerProfile, service.ActionRead, false},
		{"unknown namespace", entity.Namespace("admin"), service.ResourceItem, service.ActionCreate, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := policy.Allowed(tc.namespace, tc.resource, tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
