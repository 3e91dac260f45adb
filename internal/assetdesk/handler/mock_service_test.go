package handler

import (
	"context"
	"errors"

	"assetdesk/internal/assetdesk/model"

	"github.com/stretchr/testify/mock"
)

// MockAssetService is a mock implementation of service.AssetService.
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) CreateAsset(ctx context.Context, scope model.AccessScope, req model.CreateAssetReq) (*model.Asset, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) UpdateAsset(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssetReq) (*model.Asset, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) GetAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) ListAssets(ctx context.Context, scope model.AccessScope, req model.ListAssetsReq) ([]*model.Asset, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Asset), args.Error(1)
}

func (m *MockAssetService) ArchiveAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) RestoreAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) TransitionAssetStatus(ctx context.Context, scope model.AccessScope, id, status string) (*model.Asset, error) {
	args := m.Called(ctx, scope, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) CreateCategory(ctx context.Context, scope model.AccessScope, req model.CreateCategoryReq) (*model.AssetCategory, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetCategory), args.Error(1)
}

func (m *MockAssetService) ListCategories(ctx context.Context, scope model.AccessScope) ([]*model.AssetCategory, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AssetCategory), args.Error(1)
}

func (m *MockAssetService) Assign(ctx context.Context, scope model.AccessScope, req model.AssignAssetReq) ([]*model.AssetAssignment, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AssetAssignment), args.Error(1)
}

func (m *MockAssetService) UnassignUser(ctx context.Context, scope model.AccessScope, assignmentID string, req model.ReturnReq) (*model.AssetAssignment, error) {
	args := m.Called(ctx, scope, assignmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetAssignment), args.Error(1)
}

func (m *MockAssetService) UnassignAsset(ctx context.Context, scope model.AccessScope, assetID string, req model.ReturnReq) (int, error) {
	args := m.Called(ctx, scope, assetID, req)
	return args.Int(0), args.Error(1)
}

func (m *MockAssetService) UpdateAssignment(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssignmentReq) (*model.AssetAssignment, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetAssignment), args.Error(1)
}

func (m *MockAssetService) DeleteAssignment(ctx context.Context, scope model.AccessScope, id string) error {
	args := m.Called(ctx, scope, id)
	return args.Error(0)
}

func (m *MockAssetService) ListAssignments(ctx context.Context, scope model.AccessScope, req model.ListAssignmentsReq) ([]*model.AssetAssignment, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AssetAssignment), args.Error(1)
}

func (m *MockAssetService) EmployeeRollups(ctx context.Context, scope model.AccessScope) ([]*model.EmployeeRollup, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EmployeeRollup), args.Error(1)
}

func (m *MockAssetService) CreateRequest(ctx context.Context, scope model.AccessScope, req model.CreateRequestReq) (*model.AssetRequest, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetRequest), args.Error(1)
}

func (m *MockAssetService) ApproveRequest(ctx context.Context, scope model.AccessScope, id string) (*model.AssetRequest, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetRequest), args.Error(1)
}

func (m *MockAssetService) RejectRequest(ctx context.Context, scope model.AccessScope, id string, req model.RejectRequestReq) (*model.AssetRequest, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetRequest), args.Error(1)
}

func (m *MockAssetService) FulfillRequest(ctx context.Context, scope model.AccessScope, id string, req model.FulfillRequestReq) (*model.AssetRequest, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetRequest), args.Error(1)
}

func (m *MockAssetService) ListRequests(ctx context.Context, scope model.AccessScope, req model.ListRequestsReq) ([]*model.AssetRequest, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AssetRequest), args.Error(1)
}

func (m *MockAssetService) CreateComplaint(ctx context.Context, scope model.AccessScope, req model.CreateComplaintReq) (*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetComplaint), args.Error(1)
}

func (m *MockAssetService) StartComplaint(ctx context.Context, scope model.AccessScope, id string) (*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetComplaint), args.Error(1)
}

func (m *MockAssetService) ResolveComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetComplaint), args.Error(1)
}

func (m *MockAssetService) CloseComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetComplaint), args.Error(1)
}

func (m *MockAssetService) UpdateComplaintPriority(ctx context.Context, scope model.AccessScope, id string, req model.UpdateComplaintPriorityReq) (*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetComplaint), args.Error(1)
}

func (m *MockAssetService) ListComplaints(ctx context.Context, scope model.AccessScope, req model.ListComplaintsReq) ([]*model.AssetComplaint, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AssetComplaint), args.Error(1)
}

// stubDirectory resolves the test principals used by the handler tests.
type stubDirectory struct {
	employees map[string]*model.EmployeeInfo
}

func (d *stubDirectory) Get(_ context.Context, employeeID string) (*model.EmployeeInfo, error) {
	e, ok := d.employees[employeeID]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return e, nil
}

func (d *stubDirectory) DirectReports(_ context.Context, managerID string) ([]string, error) {
	var reports []string
	for _, e := range d.employees {
		if e.ManagerID == managerID {
			reports = append(reports, e.ID)
		}
	}
	return reports, nil
}

func (d *stubDirectory) List(_ context.Context) ([]*model.EmployeeInfo, error) {
	var out []*model.EmployeeInfo
	for _, e := range d.employees {
		out = append(out, e)
	}
	return out, nil
}
