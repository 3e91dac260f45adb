package service

import (
	"context"
	"testing"

	"assetdesk/internal/assetdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComplaintFixture(t *testing.T) (*Service, *model.AssetComplaint) {
	t.Helper()
	s, _, _ := newTestService(
		&model.EmployeeInfo{ID: "emp_1", Name: "Ann Lee", Role: model.RoleEmployee, Active: true},
	)
	category := seedCategory(t, s, "Laptop")
	asset := seedAsset(t, s, "LT-300", category.ID)

	complaint, err := s.CreateComplaint(context.Background(), employeeScope("emp_1"), model.CreateComplaintReq{
		AssetID:     asset.ID,
		Description: "screen flickers",
		Priority:    model.PriorityMedium,
	})
	require.NoError(t, err)
	return s, complaint
}

func TestComplaintLifecycle(t *testing.T) {
	ctx := context.Background()
	admin := adminScope("admin_1")
	s, complaint := newComplaintFixture(t)

	assert.Equal(t, model.ComplaintOpen, complaint.Status)
	assert.Equal(t, "emp_1", complaint.EmployeeID)

	started, err := s.StartComplaint(ctx, admin, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintInProgress, started.Status)

	resolved, err := s.ResolveComplaint(ctx, admin, complaint.ID, model.ResolveComplaintReq{
		ResolutionNotes: "panel replaced",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintResolved, resolved.Status)
	assert.Equal(t, "admin_1", resolved.ResolvedBy)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "panel replaced", resolved.ResolutionNotes)
}

func TestComplaintSkipAhead(t *testing.T) {
	ctx := context.Background()
	admin := adminScope("admin_1")

	// open -> closed without passing through in_progress is legal.
	s, complaint := newComplaintFixture(t)
	closed, err := s.CloseComplaint(ctx, admin, complaint.ID, model.ResolveComplaintReq{})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintClosed, closed.Status)
}

func TestComplaintTerminalStates(t *testing.T) {
	ctx := context.Background()
	admin := adminScope("admin_1")
	s, complaint := newComplaintFixture(t)

	_, err := s.ResolveComplaint(ctx, admin, complaint.ID, model.ResolveComplaintReq{})
	require.NoError(t, err)

	_, err = s.CloseComplaint(ctx, admin, complaint.ID, model.ResolveComplaintReq{})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.StartComplaint(ctx, admin, complaint.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Priority stays editable even after close-out.
	updated, err := s.UpdateComplaintPriority(ctx, admin, complaint.ID, model.UpdateComplaintPriorityReq{
		Priority: model.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityUrgent, updated.Priority)
}

func TestCreateComplaintUnknownAsset(t *testing.T) {
	s, _, _ := newTestService(
		&model.EmployeeInfo{ID: "emp_1", Name: "Ann Lee", Role: model.RoleEmployee, Active: true},
	)
	_, err := s.CreateComplaint(context.Background(), employeeScope("emp_1"), model.CreateComplaintReq{
		AssetID:     "missing",
		Description: "broken",
		Priority:    model.PriorityLow,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplaintResolutionNeedsCapability(t *testing.T) {
	ctx := context.Background()
	s, complaint := newComplaintFixture(t)

	_, err := s.ResolveComplaint(ctx, employeeScope("emp_1"), complaint.ID, model.ResolveComplaintReq{})
	assert.ErrorIs(t, err, ErrForbidden)
}
