package service

import (
	"context"
	"fmt"
	"time"

	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/util"
)

// Request state machine: pending -> approved -> fulfilled, pending ->
// rejected. rejected and fulfilled are terminal. Any transition from a
// wrong source state is a conflict.

func (s *Service) CreateRequest(ctx context.Context, scope model.AccessScope, req model.CreateRequestReq) (*model.AssetRequest, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	category, err := s.Repo.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category does not exist", ErrValidation)
	}

	request := &model.AssetRequest{
		RequesterID:   scope.ActorID,
		CategoryID:    category.ID,
		Description:   req.Description,
		Justification: req.Justification,
		Priority:      req.Priority,
		Status:        model.RequestPending,
	}
	if err := s.Repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	util.GetLogger().Info("asset request created", "request", request.ID, "requester", scope.ActorID, "priority", request.Priority)
	return request, nil
}

func (s *Service) getVisibleRequest(ctx context.Context, scope model.AccessScope, id string) (*model.AssetRequest, error) {
	request, err := s.Repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: request", ErrNotFound)
	}
	if !scope.CanSee(request.RequesterID) {
		return nil, fmt.Errorf("%w: request", ErrNotFound)
	}
	return request, nil
}

func (s *Service) ApproveRequest(ctx context.Context, scope model.AccessScope, id string) (*model.AssetRequest, error) {
	if err := requireCapability(scope, model.CapApproveRequests); err != nil {
		return nil, err
	}
	request, err := s.getVisibleRequest(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestPending {
		return nil, fmt.Errorf("%w: cannot approve a %s request", ErrConflict, request.Status)
	}

	now := time.Now()
	request.Status = model.RequestApproved
	request.ApprovedBy = scope.ActorID
	request.ApprovedAt = &now
	if err := s.Repo.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}
	util.GetLogger().Info("asset request approved", "request", request.ID, "actor", scope.ActorID)
	return request, nil
}

func (s *Service) RejectRequest(ctx context.Context, scope model.AccessScope, id string, req model.RejectRequestReq) (*model.AssetRequest, error) {
	if err := requireCapability(scope, model.CapApproveRequests); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	request, err := s.getVisibleRequest(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestPending {
		return nil, fmt.Errorf("%w: cannot reject a %s request", ErrConflict, request.Status)
	}

	now := time.Now()
	request.Status = model.RequestRejected
	request.RejectedBy = scope.ActorID
	request.RejectedAt = &now
	request.RejectionReason = req.Reason
	if err := s.Repo.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}
	util.GetLogger().Info("asset request rejected", "request", request.ID, "actor", scope.ActorID)
	return request, nil
}

// FulfillRequest links an approved request to a concrete asset and
// creates the ledger entries in the same transaction, so a fulfilled
// request always has its assignment.
func (s *Service) FulfillRequest(ctx context.Context, scope model.AccessScope, id string, req model.FulfillRequestReq) (*model.AssetRequest, error) {
	if err := requireCapability(scope, model.CapApproveRequests); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	request, err := s.getVisibleRequest(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestApproved {
		return nil, fmt.Errorf("%w: cannot fulfill a %s request", ErrConflict, request.Status)
	}

	asset, err := s.Repo.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}
	if model.UnassignableStatuses[asset.Status] {
		return nil, fmt.Errorf("%w: asset is %s", ErrConflict, asset.Status)
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		employeeIDs = []string{request.RequesterID}
	}

	entries := make([]*model.AssetAssignment, 0, len(employeeIDs))
	logs := make([]*model.AssignmentLog, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		if !scope.CanSee(employeeID) {
			return nil, fmt.Errorf("%w: employee %s outside scope", ErrForbidden, employeeID)
		}
		emp, err := s.Dir.Get(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("%w: employee %s", ErrValidation, employeeID)
		}
		entries = append(entries, &model.AssetAssignment{
			AssetID:             asset.ID,
			EmployeeID:          employeeID,
			AssignedBy:          scope.ActorID,
			AssignmentType:      model.AssignmentPermanent,
			ConditionAtIssuance: asset.Condition,
			Notes:               req.Notes,
			IsActive:            true,
		})
		logs = append(logs, s.buildLog(ctx, model.LogActionAssigned, scope.ActorID, asset, emp))
	}

	now := time.Now()
	request.Status = model.RequestFulfilled
	request.FulfilledBy = scope.ActorID
	request.FulfilledAt = &now
	request.FulfilledAssetID = asset.ID

	newStatus := deriveStatus(asset.Status, int64(len(entries)))
	if err := s.Repo.FulfillRequest(ctx, request, entries, logs, asset.ID, newStatus); err != nil {
		return nil, err
	}
	util.GetLogger().Info("asset request fulfilled", "request", request.ID, "asset", asset.Tag, "actor", scope.ActorID)
	return request, nil
}

func (s *Service) ListRequests(ctx context.Context, scope model.AccessScope, req model.ListRequestsReq) ([]*model.AssetRequest, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return s.Repo.FindRequests(ctx, model.RequestFilter{
		Status:       req.Status,
		Priority:     req.Priority,
		RequesterIDs: scope.VisibleEmployeeIDs(),
	})
}
