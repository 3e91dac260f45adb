package policy

import (
	"context"

	"assetdesk/internal/assetdesk/directory"
	"assetdesk/internal/assetdesk/model"
)

// rolePerms maps directory roles to capability sets. hr_admin is the
// only role allowed to touch the registry itself; managers operate the
// ledger and workflows within their team; employees only raise requests
// and complaints.
var rolePerms = map[string][]string{
	model.RoleHRAdmin: {
		model.CapManageAssets,
		model.CapManageCategories,
		model.CapManageAssignments,
		model.CapDeleteAssignments,
		model.CapApproveRequests,
		model.CapResolveComplaints,
		model.CapViewHistory,
	},
	model.RoleManager: {
		model.CapManageAssignments,
		model.CapApproveRequests,
		model.CapResolveComplaints,
		model.CapViewHistory,
	},
	model.RoleEmployee: {},
}

// Resolve builds the AccessScope for an acting principal from its
// directory record. hr_admin sees the whole org; managers see themselves
// plus direct reports; everyone else sees only their own records.
func Resolve(ctx context.Context, dir directory.Directory, employeeID string) (model.AccessScope, error) {
	emp, err := dir.Get(ctx, employeeID)
	if err != nil {
		return model.AccessScope{}, err
	}

	scope := model.AccessScope{
		ActorID:      emp.ID,
		Capabilities: make(map[string]bool),
	}
	for _, cap := range rolePerms[emp.Role] {
		scope.Capabilities[cap] = true
	}

	switch emp.Role {
	case model.RoleHRAdmin:
		scope.FullVisibility = true
	case model.RoleManager:
		reports, err := dir.DirectReports(ctx, emp.ID)
		if err != nil {
			return model.AccessScope{}, err
		}
		scope.TeamFilter = append([]string{emp.ID}, reports...)
	default:
		scope.TeamFilter = []string{emp.ID}
	}

	return scope, nil
}
