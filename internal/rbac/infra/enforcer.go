package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// ModelText is a plain RBAC model: a role inherits every permission of the
// roles it is grouped under.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds an enforcer from the embedded model. When policyPath is
// set, policies are loaded from that CSV file instead of being seeded in code.
func NewEnforcer(policyPath string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}
	if policyPath != "" {
		return casbin.NewEnforcer(m, policyPath)
	}
	return casbin.NewEnforcer(m)
}
