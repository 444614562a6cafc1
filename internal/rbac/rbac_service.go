package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin          = "admin"
	RolePayrollManager = "payroll_manager"
	RoleHRViewer       = "hr_viewer"
)

const (
	ResourcePayslip = "payslip"

	ActionGenerate = "generate"
	ActionRead     = "read"
	ActionSimulate = "simulate"
)

const modelText = `[request_definition]
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

// DefaultPolicies grants payroll managers the whole payslip surface and HR
// viewers read and simulate. Admins inherit payroll_manager.
var DefaultPolicies = [][]string{
	{RolePayrollManager, ResourcePayslip, ActionGenerate},
	{RolePayrollManager, ResourcePayslip, ActionRead},
	{RolePayrollManager, ResourcePayslip, ActionSimulate},
	{RoleHRViewer, ResourcePayslip, ActionRead},
	{RoleHRViewer, ResourcePayslip, ActionSimulate},
}

var DefaultRoleInheritance = [][]string{
	{RoleAdmin, RolePayrollManager},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService builds an in-memory enforcer. Nil policies or inheritance fall
// back to the defaults above.
func NewService(policies, inheritance [][]string) (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	if policies == nil {
		policies = DefaultPolicies
	}
	if inheritance == nil {
		inheritance = DefaultRoleInheritance
	}

	if len(policies) > 0 {
		if _, err := e.AddPolicies(policies); err != nil {
			return nil, err
		}
	}
	if len(inheritance) > 0 {
		if _, err := e.AddGroupingPolicies(inheritance); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: e}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return s.enforcer.Enforce(role, resource, action)
}
