package service

import (
	"context"
	"testing"

	"assetdesk/internal/assetdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRollups(t *testing.T) {
	ctx := context.Background()
	admin := adminScope("admin_1")
	s, _, dir := newTestService(
		&model.EmployeeInfo{ID: "emp_1", Name: "ann lee", Department: "Engineering", Role: model.RoleEmployee, Active: true},
		&model.EmployeeInfo{ID: "emp_2", Name: "Bob Wu", Department: "Sales", Role: model.RoleEmployee, Active: true},
	)
	category := seedCategory(t, s, "Laptop")
	a1 := seedAsset(t, s, "LT-400", category.ID)
	a2 := seedAsset(t, s, "LT-401", category.ID)

	// emp_1: one returned assignment plus one still active.
	entries, err := s.Assign(ctx, admin, model.AssignAssetReq{
		AssetID:        a1.ID,
		EmployeeIDs:    []string{"emp_1"},
		AssignmentType: model.AssignmentPermanent,
	})
	require.NoError(t, err)
	_, err = s.UnassignUser(ctx, admin, entries[0].ID, model.ReturnReq{})
	require.NoError(t, err)

	_, err = s.Assign(ctx, admin, model.AssignAssetReq{
		AssetID:        a2.ID,
		EmployeeIDs:    []string{"emp_1", "emp_2"},
		AssignmentType: model.AssignmentPermanent,
	})
	require.NoError(t, err)

	rollups, err := s.EmployeeRollups(ctx, admin)
	require.NoError(t, err)
	require.Len(t, rollups, 2)

	// Sorted by name, case-insensitive: "ann lee" before "Bob Wu".
	ann, bob := rollups[0], rollups[1]
	assert.Equal(t, "emp_1", ann.EmployeeID)
	assert.Equal(t, "emp_2", bob.EmployeeID)

	// Totals count issuances, not every log row.
	assert.Equal(t, 2, ann.TotalCount)
	assert.Equal(t, 1, ann.ActiveCount)
	require.NotNil(t, ann.LastActionDate)
	assert.False(t, ann.AtRisk)

	assert.Equal(t, 1, bob.TotalCount)
	assert.Equal(t, 1, bob.ActiveCount)

	// Deactivating the employee in the directory flags outstanding
	// holdings on the next read, with no stored state involved.
	dir.employees["emp_2"].Active = false
	rollups, err = s.EmployeeRollups(ctx, admin)
	require.NoError(t, err)
	assert.True(t, rollups[1].AtRisk)
	assert.False(t, rollups[1].Active)
}

func TestEmployeeRollupsScope(t *testing.T) {
	ctx := context.Background()
	admin := adminScope("admin_1")
	s, _, _ := newTestService(
		&model.EmployeeInfo{ID: "mgr_1", Name: "Meg Ito", Role: model.RoleManager, Active: true},
		&model.EmployeeInfo{ID: "emp_1", Name: "Ann Lee", ManagerID: "mgr_1", Role: model.RoleEmployee, Active: true},
		&model.EmployeeInfo{ID: "emp_2", Name: "Bob Wu", Role: model.RoleEmployee, Active: true},
	)
	category := seedCategory(t, s, "Laptop")
	a1 := seedAsset(t, s, "LT-410", category.ID)
	a2 := seedAsset(t, s, "LT-411", category.ID)

	for asset, holder := range map[*model.Asset]string{a1: "emp_1", a2: "emp_2"} {
		_, err := s.Assign(ctx, admin, model.AssignAssetReq{
			AssetID:        asset.ID,
			EmployeeIDs:    []string{holder},
			AssignmentType: model.AssignmentPermanent,
		})
		require.NoError(t, err)
	}

	full, err := s.EmployeeRollups(ctx, admin)
	require.NoError(t, err)
	fullIDs := make(map[string]bool, len(full))
	for _, r := range full {
		fullIDs[r.EmployeeID] = true
	}

	team, err := s.EmployeeRollups(ctx, managerScope("mgr_1", "emp_1"))
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "emp_1", team[0].EmployeeID)
	for _, r := range team {
		assert.True(t, fullIDs[r.EmployeeID], "team view must be contained in the full view")
	}

	// Employees carry no history capability at all.
	_, err = s.EmployeeRollups(ctx, employeeScope("emp_1"))
	assert.ErrorIs(t, err, ErrForbidden)
}
