package auth

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/pkg/errors"

	"gearshare/internal/domain/entity"
	"gearshare/internal/domain/service"
)

//go:embed model.conf
var casbinModelContent string

//go:embed policy.csv
var casbinPolicyContent string

// casbinPolicy answers namespace x resource x action questions from the embedded policy.
type casbinPolicy struct {
	enforcer *casbin.Enforcer
}

// NewCasbinPolicy loads the embedded model and policy into an enforcer.
func NewCasbinPolicy() (service.AccessPolicy, error) {
	m, err := model.NewModelFromString(casbinModelContent)
	if err != nil {
		return nil, errors.Wrap(err, "parse casbin model")
	}

	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(casbinPolicyContent))
	if err != nil {
		return nil, errors.Wrap(err, "create casbin enforcer")
	}

	return &casbinPolicy{enforcer: enforcer}, nil
}

// Allowed reports whether principals of the namespace may perform the action.
func (p *casbinPolicy) Allowed(namespace entity.Namespace, resource, action string) (bool, error) {
	if !namespace.IsValid() {
		return false, nil
	}

	allowed, err := p.enforcer.Enforce(namespace.String(), resource, action)
	if err != nil {
		return false, errors.Wrap(err, "enforce access policy")
	}

	return allowed, nil
}
