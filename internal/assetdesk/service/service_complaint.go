package service

import (
	"context"
	"fmt"
	"time"

	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/util"
)

// Complaint state machine: open -> in_progress -> resolved/closed, with
// skip-ahead from open straight to resolved/closed allowed. Terminal
// states accept no further transitions. Priority stays mutable
// throughout.

func (s *Service) CreateComplaint(ctx context.Context, scope model.AccessScope, req model.CreateComplaintReq) (*model.AssetComplaint, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	asset, err := s.Repo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}

	complaint := &model.AssetComplaint{
		AssetID:     asset.ID,
		EmployeeID:  scope.ActorID,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      model.ComplaintOpen,
	}
	if err := s.Repo.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	util.GetLogger().Info("complaint created", "complaint", complaint.ID, "asset", asset.Tag, "employee", scope.ActorID)
	return complaint, nil
}

func (s *Service) getVisibleComplaint(ctx context.Context, scope model.AccessScope, id string) (*model.AssetComplaint, error) {
	complaint, err := s.Repo.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, fmt.Errorf("%w: complaint", ErrNotFound)
	}
	if !scope.CanSee(complaint.EmployeeID) {
		return nil, fmt.Errorf("%w: complaint", ErrNotFound)
	}
	return complaint, nil
}

func (s *Service) StartComplaint(ctx context.Context, scope model.AccessScope, id string) (*model.AssetComplaint, error) {
	if err := requireCapability(scope, model.CapResolveComplaints); err != nil {
		return nil, err
	}
	complaint, err := s.getVisibleComplaint(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if complaint.Status != model.ComplaintOpen {
		return nil, fmt.Errorf("%w: cannot start a %s complaint", ErrConflict, complaint.Status)
	}
	complaint.Status = model.ComplaintInProgress
	if err := s.Repo.UpdateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *Service) ResolveComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error) {
	return s.closeOut(ctx, scope, id, model.ComplaintResolved, req)
}

func (s *Service) CloseComplaint(ctx context.Context, scope model.AccessScope, id string, req model.ResolveComplaintReq) (*model.AssetComplaint, error) {
	return s.closeOut(ctx, scope, id, model.ComplaintClosed, req)
}

func (s *Service) closeOut(ctx context.Context, scope model.AccessScope, id, terminal string, req model.ResolveComplaintReq) (*model.AssetComplaint, error) {
	if err := requireCapability(scope, model.CapResolveComplaints); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	complaint, err := s.getVisibleComplaint(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if complaint.Status != model.ComplaintOpen && complaint.Status != model.ComplaintInProgress {
		return nil, fmt.Errorf("%w: complaint already %s", ErrConflict, complaint.Status)
	}

	now := time.Now()
	complaint.Status = terminal
	complaint.ResolvedBy = scope.ActorID
	complaint.ResolvedAt = &now
	complaint.ResolutionNotes = req.ResolutionNotes
	if err := s.Repo.UpdateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	util.GetLogger().Info("complaint closed out", "complaint", complaint.ID, "status", terminal, "actor", scope.ActorID)
	return complaint, nil
}

func (s *Service) UpdateComplaintPriority(ctx context.Context, scope model.AccessScope, id string, req model.UpdateComplaintPriorityReq) (*model.AssetComplaint, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	complaint, err := s.getVisibleComplaint(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	complaint.Priority = req.Priority
	if err := s.Repo.UpdateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *Service) ListComplaints(ctx context.Context, scope model.AccessScope, req model.ListComplaintsReq) ([]*model.AssetComplaint, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return s.Repo.FindComplaints(ctx, model.ComplaintFilter{
		Status:      req.Status,
		Priority:    req.Priority,
		AssetID:     req.AssetID,
		EmployeeIDs: scope.VisibleEmployeeIDs(),
	})
}
