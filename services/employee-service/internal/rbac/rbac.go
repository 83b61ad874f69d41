// Package rbac holds the per-operation role policy for the employee
// service. All endpoints go through Decide against the one table below;
// no handler carries its own role checks.
package rbac

import (
	"errors"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/identity"
)

// ErrForbidden is deliberately detail-free; responses built from it must
// not reveal which role would have been accepted or whether the resource
// exists.
var ErrForbidden = errors.New("forbidden")

type Operation string

const (
	OpEmployeeCreate Operation = "employee.create"
	OpEmployeeUpdate Operation = "employee.update"
	OpEmployeeDelete Operation = "employee.delete"
	OpEmployeeRead   Operation = "employee.read"
	OpEmployeeList   Operation = "employee.list"

	OpDepartmentCreate Operation = "department.create"
	OpDepartmentUpdate Operation = "department.update"
	OpDepartmentDelete Operation = "department.delete"
	OpDepartmentRead   Operation = "department.read"
)

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

type rule struct {
	roles map[string]struct{}
	// selfScoped marks operations where RoleEmployee is admitted only
	// when the caller's subject equals the resource's owning identity.
	selfScoped bool
}

func allow(roles ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return m
}

// The role hierarchy is not transitive: each operation lists its exact
// allowed set.
var policy = map[Operation]rule{
	OpEmployeeCreate: {roles: allow(RoleAdmin)},
	OpEmployeeUpdate: {roles: allow(RoleAdmin)},
	OpEmployeeDelete: {roles: allow(RoleAdmin)},
	OpEmployeeRead:   {roles: allow(RoleAdmin, RoleManager, RoleEmployee), selfScoped: true},
	OpEmployeeList:   {roles: allow(RoleAdmin, RoleManager)},

	OpDepartmentCreate: {roles: allow(RoleAdmin)},
	OpDepartmentUpdate: {roles: allow(RoleAdmin)},
	OpDepartmentDelete: {roles: allow(RoleAdmin)},
	OpDepartmentRead:   {roles: allow(RoleAdmin, RoleManager, RoleEmployee)},
}

// RoleAllowed reports whether role appears in op's allowed set, ignoring
// any ownership condition. Handlers that must load a resource before the
// full Decide call use this first, so a role outside the set is rejected
// without revealing whether the resource exists.
func RoleAllowed(op Operation, role string) bool {
	r, ok := policy[op]
	if !ok {
		return false
	}
	_, ok = r.roles[role]
	return ok
}

// Decide evaluates op for the given identity. ownerID is the resource's
// owning business identity and only matters for self-scoped operations;
// pass "" for operations without an ownership condition. An absent or
// unrecognized role always denies.
func Decide(op Operation, id identity.Identity, ownerID string) error {
	r, ok := policy[op]
	if !ok {
		return ErrForbidden
	}
	if _, ok := r.roles[id.Role]; !ok {
		return ErrForbidden
	}
	if r.selfScoped && id.Role == RoleEmployee && id.Subject != ownerID {
		return ErrForbidden
	}
	return nil
}
