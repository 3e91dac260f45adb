package service

import (
	"context"
	"errors"

	"assetdesk/internal/assetdesk/directory"
	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
)

// AssetService is the full capability surface of the asset core. Every
// call takes the caller's resolved AccessScope; nothing reads
// permissions from ambient state.
type AssetService interface {
	// Registry
	CreateAsset(ctx context.Context, scope model.AccessScope, req model.CreateAssetReq) (*model.Asset, error)
	UpdateAsset(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssetReq) (*model.Asset, error)
	GetAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error)
	ListAssets(ctx context.Context, scope model.AccessScope, req model.ListAssetsReq) ([]*model.Asset, error)
	ArchiveAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error)
	RestoreAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error)
	TransitionAssetStatus(ctx context.Context, scope model.AccessScope, id, status string) (*model.Asset, error)
	CreateCategory(ctx context.Context, scope model.AccessScope, req model.CreateCategoryReq) (*model.AssetCategory, error)
	ListCategories(ctx context.Context, scope model.AccessScope) ([]*model.AssetCategory, error)

	// Ledger
	Assign(ctx context.Context, scope model.AccessScope, req model.AssignAssetReq) ([]*model.AssetAssignment, error)
	UnassignUser(ctx context.Context, scope model.AccessScope, assignmentID string, req model.ReturnReq) (*model.AssetAssignment, error)
	UnassignAsset(ctx context.Context, scope model.AccessScope, assetID string, req model.ReturnReq) (int, error)
	UpdateAssignment(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssignmentReq) (*model.AssetAssignment, error)
	DeleteAssignment(ctx context.Context, scope model.AccessScope, id string) error
	ListAssignments(ctx context.Context, scope model.AccessScope, req model.ListAssignmentsReq) ([]*model.AssetAssignment, error)

	// History
	EmployeeRollups(ctx context.Context, scope model.AccessScope) ([]*model.EmployeeRollup, error)

	// Requests
	CreateRequest(ctx context.Context, scope model.AccessScope, req model.CreateRequestReq) (*model.AssetRequest, error)
	ApproveRequest(ctx context.Context, scope model.AccessScope, id string) (*model.AssetRequest, error)
	RejectRequest(ctx context.Context, scope model.AccessScope, id string, req model.RejectRequestReq) (*model.AssetRequest, error)
	FulfillRequest(ctx context.Context, scope model.AccessScope, id string, req model.FulfillRequestReq) (*model.AssetRequest, error)
	ListRequests(ctx context.Context, scope model.AccessScope, req model.ListRequestsReq) ([]*model.AssetRequest, error)

	// Complaints
	CreateComplaint(ctx context.Context, scope model.AccessScope, req model.CreateComplaintReq) (*model.AssetComplaint, error)
	StartComplaint(ctx context.Context, scope model.AccessScope, id string) (*model.AssetComplaint, error)
	ResolveComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error)
	CloseComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error)
	UpdateComplaintPriority(ctx context.Context, scope model.AccessScope, id string, req model.UpdateComplaintPriorityReq) (*model.AssetComplaint, error)
	ListComplaints(ctx context.Context, scope model.AccessScope, req model.ListComplaintsReq) ([]*model.AssetComplaint, error)
}

type Service struct {
	Repo    repository.Repository
	LogRepo repository.LogRepository
	Dir     directory.Directory
}

func NewService(repo repository.Repository, logRepo repository.LogRepository, dir directory.Directory) *Service {
	return &Service{Repo: repo, LogRepo: logRepo, Dir: dir}
}

// deriveStatus is the ledger-driven status rule: assigned iff at least
// one active entry exists, except sticky statuses which only explicit
// transitions change. Pure on purpose; recomputed after every ledger
// mutation, never cached.
func deriveStatus(current string, activeCount int64) string {
	if model.StickyStatuses[current] {
		return current
	}
	if activeCount > 0 {
		return model.StatusAssigned
	}
	return model.StatusAvailable
}

func requireActor(scope model.AccessScope) error {
	if scope.ActorID == "" {
		return ErrUnauthorized
	}
	return nil
}

func requireCapability(scope model.AccessScope, capability string) error {
	if err := requireActor(scope); err != nil {
		return err
	}
	if !scope.Allows(capability) {
		return ErrForbidden
	}
	return nil
}
