package service

import (
	"context"
	"fmt"
	"time"

	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/repository"
	"assetdesk/internal/assetdesk/util"
)

// Assign issues one asset to every employee in the request, one ledger
// entry each, atomically: either all entries are created or none.
func (s *Service) Assign(ctx context.Context, scope model.AccessScope, req model.AssignAssetReq) ([]*model.AssetAssignment, error) {
	if err := requireCapability(scope, model.CapManageAssignments); err != nil {
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
	if model.UnassignableStatuses[asset.Status] {
		return nil, fmt.Errorf("%w: asset is %s", ErrConflict, asset.Status)
	}

	// Validate the whole batch before any write so a partial fan-out
	// cannot happen.
	condition := req.ConditionAtIssuance
	if condition == "" {
		condition = asset.Condition
	}
	entries := make([]*model.AssetAssignment, 0, len(req.EmployeeIDs))
	logs := make([]*model.AssignmentLog, 0, len(req.EmployeeIDs))
	for _, employeeID := range req.EmployeeIDs {
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
			AssignmentType:      req.AssignmentType,
			ExpiryDate:          req.ExpiryDate,
			ConditionAtIssuance: condition,
			Notes:               req.Notes,
			IsActive:            true,
		})
		logs = append(logs, s.buildLog(ctx, model.LogActionAssigned, scope.ActorID, asset, emp))
	}

	if err := s.Repo.CreateAssignments(ctx, entries, logs, asset.ID, deriveStatus(asset.Status, int64(len(entries)))); err != nil {
		return nil, err
	}

	util.GetLogger().Info("asset assigned", "asset", asset.Tag, "employees", len(entries), "actor", scope.ActorID)
	return entries, nil
}

func (s *Service) buildLog(ctx context.Context, action, actorID string, asset *model.Asset, emp *model.EmployeeInfo) *model.AssignmentLog {
	log := &model.AssignmentLog{
		Action:     action,
		ActorID:    actorID,
		AssetID:    asset.ID,
		AssetTag:   asset.Tag,
		AssetName:  asset.Name,
		EmployeeID: emp.ID,
	}
	log.EmployeeName = emp.Name
	log.Department = emp.Department
	if category, err := s.Repo.GetCategory(ctx, asset.CategoryID); err == nil && category != nil {
		log.CategoryName = category.Name
	}
	return log
}

// UnassignUser returns a single ledger entry. Idempotent: an already
// inactive entry is a no-op success.
func (s *Service) UnassignUser(ctx context.Context, scope model.AccessScope, assignmentID string, req model.ReturnReq) (*model.AssetAssignment, error) {
	if err := requireCapability(scope, model.CapManageAssignments); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	entry, err := s.Repo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: assignment", ErrNotFound)
	}
	if !scope.CanSee(entry.EmployeeID) {
		return nil, ErrForbidden
	}
	if !entry.IsActive {
		return entry, nil
	}

	asset, newStatus, err := s.statusAfterDeactivating(ctx, entry.AssetID, 1)
	if err != nil {
		return nil, err
	}

	stamp := repository.ReturnStamp{Date: time.Now(), Condition: req.ReturnCondition, Notes: req.ReturnNotes}
	log := s.returnLog(ctx, scope.ActorID, asset, entry)
	if err := s.Repo.DeactivateAssignments(ctx, []string{entry.ID}, stamp, []*model.AssignmentLog{log}, asset.ID, newStatus); err != nil {
		return nil, err
	}

	entry.IsActive = false
	entry.ReturnDate = &stamp.Date
	entry.ReturnCondition = stamp.Condition
	entry.ReturnConditionNotes = stamp.Notes
	util.GetLogger().Info("assignment returned", "assignment", entry.ID, "asset", asset.Tag, "actor", scope.ActorID)
	return entry, nil
}

// statusAfterDeactivating derives the asset status once `deactivated`
// active entries have been returned.
func (s *Service) statusAfterDeactivating(ctx context.Context, assetID string, deactivated int64) (*model.Asset, string, error) {
	asset, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return nil, "", err
	}
	if asset == nil {
		return nil, "", fmt.Errorf("%w: asset", ErrNotFound)
	}
	active, err := s.Repo.CountActiveAssignments(ctx, assetID)
	if err != nil {
		return nil, "", err
	}
	remaining := active - deactivated
	if remaining < 0 {
		remaining = 0
	}
	return asset, deriveStatus(asset.Status, remaining), nil
}

func (s *Service) returnLog(ctx context.Context, actorID string, asset *model.Asset, entry *model.AssetAssignment) *model.AssignmentLog {
	emp, err := s.Dir.Get(ctx, entry.EmployeeID)
	if err != nil || emp == nil {
		// The employee may have left the directory; the snapshot keeps
		// the id either way.
		emp = &model.EmployeeInfo{ID: entry.EmployeeID}
	}
	log := s.buildLog(ctx, model.LogActionReturned, actorID, asset, emp)
	log.AssignmentID = entry.ID
	return log
}

// UnassignAsset returns every active entry for the asset in one atomic
// operation.
func (s *Service) UnassignAsset(ctx context.Context, scope model.AccessScope, assetID string, req model.ReturnReq) (int, error) {
	if err := requireCapability(scope, model.CapManageAssignments); err != nil {
		return 0, err
	}
	if err := req.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	asset, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil {
		return 0, err
	}
	if asset == nil {
		return 0, fmt.Errorf("%w: asset", ErrNotFound)
	}

	entries, err := s.Repo.FindAssignments(ctx, model.AssignmentFilter{AssetID: assetID, ActiveOnly: true})
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	for _, entry := range entries {
		if !scope.CanSee(entry.EmployeeID) {
			return 0, ErrForbidden
		}
	}

	ids := make([]string, 0, len(entries))
	logs := make([]*model.AssignmentLog, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
		logs = append(logs, s.returnLog(ctx, scope.ActorID, asset, entry))
	}

	stamp := repository.ReturnStamp{Date: time.Now(), Condition: req.ReturnCondition, Notes: req.ReturnNotes}
	newStatus := deriveStatus(asset.Status, 0)
	if err := s.Repo.DeactivateAssignments(ctx, ids, stamp, logs, asset.ID, newStatus); err != nil {
		return 0, err
	}

	util.GetLogger().Info("asset unassigned", "asset", asset.Tag, "entries", len(ids), "actor", scope.ActorID)
	return len(ids), nil
}

// UpdateAssignment edits entry metadata. Switching to permanent clears
// the expiry; switching to temporary requires a fresh one (validated in
// the request).
func (s *Service) UpdateAssignment(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssignmentReq) (*model.AssetAssignment, error) {
	if err := requireCapability(scope, model.CapManageAssignments); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	entry, err := s.Repo.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: assignment", ErrNotFound)
	}
	if !scope.CanSee(entry.EmployeeID) {
		return nil, ErrForbidden
	}

	previousAssetID := entry.AssetID
	if req.AssetID != nil && *req.AssetID != entry.AssetID {
		target, err := s.Repo.GetAsset(ctx, *req.AssetID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, fmt.Errorf("%w: asset does not exist", ErrValidation)
		}
		if model.UnassignableStatuses[target.Status] {
			return nil, fmt.Errorf("%w: asset is %s", ErrConflict, target.Status)
		}
		entry.AssetID = target.ID
	}
	if req.EmployeeID != nil && *req.EmployeeID != entry.EmployeeID {
		if !scope.CanSee(*req.EmployeeID) {
			return nil, ErrForbidden
		}
		if _, err := s.Dir.Get(ctx, *req.EmployeeID); err != nil {
			return nil, fmt.Errorf("%w: employee does not exist", ErrValidation)
		}
		entry.EmployeeID = *req.EmployeeID
	}
	if req.AssignmentType != nil {
		entry.AssignmentType = *req.AssignmentType
		if *req.AssignmentType == model.AssignmentPermanent {
			entry.ExpiryDate = nil
		} else {
			entry.ExpiryDate = req.ExpiryDate
		}
	} else if req.ExpiryDate != nil {
		if entry.AssignmentType != model.AssignmentTemporary {
			return nil, fmt.Errorf("%w: expiry_date only applies to temporary assignments", ErrValidation)
		}
		entry.ExpiryDate = req.ExpiryDate
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.Repo.UpdateAssignment(ctx, entry); err != nil {
		return nil, err
	}

	// Reassignment to another asset moves the active count of both
	// assets; recompute each.
	if entry.IsActive && previousAssetID != entry.AssetID {
		if err := s.recomputeStatus(ctx, previousAssetID); err != nil {
			return nil, err
		}
		if err := s.recomputeStatus(ctx, entry.AssetID); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

func (s *Service) recomputeStatus(ctx context.Context, assetID string) error {
	asset, err := s.Repo.GetAsset(ctx, assetID)
	if err != nil || asset == nil {
		return err
	}
	active, err := s.Repo.CountActiveAssignments(ctx, assetID)
	if err != nil {
		return err
	}
	status := deriveStatus(asset.Status, active)
	if status == asset.Status {
		return nil
	}
	return s.Repo.SetAssetStatus(ctx, assetID, status, "")
}

// DeleteAssignment hard-deletes a ledger entry, the administrative undo
// for a mistaken issuance. Asset status is restored exactly as a return
// would.
func (s *Service) DeleteAssignment(ctx context.Context, scope model.AccessScope, id string) error {
	if err := requireCapability(scope, model.CapDeleteAssignments); err != nil {
		return err
	}

	entry, err := s.Repo.GetAssignment(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: assignment", ErrNotFound)
	}

	asset, err := s.Repo.GetAsset(ctx, entry.AssetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("%w: asset", ErrNotFound)
	}

	deactivated := int64(0)
	if entry.IsActive {
		deactivated = 1
	}
	_, newStatus, err := s.statusAfterDeactivating(ctx, asset.ID, deactivated)
	if err != nil {
		return err
	}

	log := s.returnLog(ctx, scope.ActorID, asset, entry)
	log.Action = model.LogActionUnassigned
	if err := s.Repo.DeleteAssignment(ctx, id, log, asset.ID, newStatus); err != nil {
		return err
	}
	util.GetLogger().Info("assignment deleted", "assignment", id, "asset", asset.Tag, "actor", scope.ActorID)
	return nil
}

func (s *Service) ListAssignments(ctx context.Context, scope model.AccessScope, req model.ListAssignmentsReq) ([]*model.AssetAssignment, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if req.EmployeeID != "" && !scope.CanSee(req.EmployeeID) {
		return nil, ErrForbidden
	}

	filter := model.AssignmentFilter{
		AssetID:    req.AssetID,
		EmployeeID: req.EmployeeID,
		ActiveOnly: req.ActiveOnly,
	}
	if req.EmployeeID == "" {
		filter.EmployeeIDs = scope.VisibleEmployeeIDs()
	}
	entries, err := s.Repo.FindAssignments(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Lazy expiry: temporary entries past their expiry stay active until
	// explicitly returned, but reads flag them.
	now := time.Now()
	for _, entry := range entries {
		if entry.IsActive && entry.AssignmentType == model.AssignmentTemporary &&
			entry.ExpiryDate != nil && entry.ExpiryDate.Before(now) {
			entry.Expired = true
		}
	}
	return entries, nil
}
