package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/repository"
	"assetdesk/internal/assetdesk/util"
)

func (s *Service) CreateAsset(ctx context.Context, scope model.AccessScope, req model.CreateAssetReq) (*model.Asset, error) {
	if err := requireCapability(scope, model.CapManageAssets); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	categoryID, err := s.resolveCategory(ctx, scope, req.CategoryID, req.CategoryName)
	if err != nil {
		return nil, err
	}

	asset := &model.Asset{
		Tag:          req.Tag,
		Name:         req.Name,
		CategoryID:   categoryID,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Condition:    req.Condition,
		Status:       resolveStatus(req.Condition, req.Status),
		PurchaseDate: req.PurchaseDate,
		WarrantyEnd:  req.WarrantyEnd,
		DocumentURLs: req.DocumentURLs,
		Notes:        req.Notes,
		VM:           req.VM,
		CreatedBy:    scope.ActorID,
		UpdatedBy:    scope.ActorID,
	}

	if err := s.Repo.CreateAsset(ctx, asset); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: asset tag already in use", ErrConflict)
		}
		return nil, err
	}

	util.GetLogger().Info("asset created", "tag", asset.Tag, "actor", scope.ActorID, "vm", asset.VM != nil)
	return asset, nil
}

// resolveStatus applies the damaged rule: a damaged asset lands in
// archived unless the caller explicitly supplied a status in the same
// mutation.
func resolveStatus(condition, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if condition == model.ConditionDamaged {
		return model.StatusArchived
	}
	return model.StatusAvailable
}

// resolveCategory returns an existing category id, or creates one from
// an inline name (idempotent on the normalized name).
func (s *Service) resolveCategory(ctx context.Context, scope model.AccessScope, categoryID, categoryName string) (string, error) {
	if categoryID != "" {
		category, err := s.Repo.GetCategory(ctx, categoryID)
		if err != nil {
			return "", err
		}
		if category == nil {
			return "", fmt.Errorf("%w: category does not exist", ErrValidation)
		}
		return category.ID, nil
	}

	created, err := s.CreateCategory(ctx, scope, model.CreateCategoryReq{Name: categoryName})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (s *Service) UpdateAsset(ctx context.Context, scope model.AccessScope, id string, req model.UpdateAssetReq) (*model.Asset, error) {
	if err := requireCapability(scope, model.CapManageAssets); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	asset, err := s.Repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.CategoryID != nil {
		category, err := s.Repo.GetCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category does not exist", ErrValidation)
		}
		// Moving a VM asset to a non-VM category is allowed; the VM
		// fields simply go inert, they are not validated further.
		asset.CategoryID = category.ID
	}
	if req.Brand != nil {
		asset.Brand = *req.Brand
	}
	if req.Model != nil {
		asset.Model = *req.Model
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = *req.SerialNumber
	}
	if req.Condition != nil {
		asset.Condition = *req.Condition
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = req.PurchaseDate
	}
	if req.WarrantyEnd != nil {
		asset.WarrantyEnd = req.WarrantyEnd
	}
	if req.LastAuditAt != nil {
		asset.LastAuditAt = req.LastAuditAt
	}
	if req.DocumentURLs != nil {
		asset.DocumentURLs = req.DocumentURLs
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}
	if req.VM != nil {
		asset.VM = req.VM
	}

	// Re-evaluate the damaged rule against the resulting pair: only an
	// explicit status in this same patch overrides the auto-archive.
	if asset.Condition == model.ConditionDamaged && req.Status == nil {
		asset.Status = model.StatusArchived
	}

	asset.UpdatedBy = scope.ActorID
	if err := s.Repo.UpdateAsset(ctx, asset); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: asset tag already in use", ErrConflict)
		}
		return nil, err
	}
	return asset, nil
}

func (s *Service) GetAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	asset, err := s.Repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}
	if !scope.FullVisibility {
		visible, err := s.assetVisible(ctx, scope, asset.ID)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, fmt.Errorf("%w: asset", ErrNotFound)
		}
	}
	s.attachCategoryName(ctx, asset)
	return asset, nil
}

// assetVisible reports whether a team-scoped actor currently holds (or
// manages a holder of) the asset.
func (s *Service) assetVisible(ctx context.Context, scope model.AccessScope, assetID string) (bool, error) {
	entries, err := s.Repo.FindAssignments(ctx, model.AssignmentFilter{
		AssetID:     assetID,
		EmployeeIDs: scope.VisibleEmployeeIDs(),
		ActiveOnly:  true,
	})
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (s *Service) attachCategoryName(ctx context.Context, assets ...*model.Asset) {
	for _, asset := range assets {
		category, err := s.Repo.GetCategory(ctx, asset.CategoryID)
		if err == nil && category != nil {
			asset.CategoryName = category.Name
		}
	}
}

func (s *Service) ListAssets(ctx context.Context, scope model.AccessScope, req model.ListAssetsReq) ([]*model.Asset, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	filter := model.AssetFilter{
		Status:         req.Status,
		CategoryID:     req.CategoryID,
		Condition:      req.Condition,
		IncludeVirtual: req.IncludeVirtual,
		VirtualOnly:    req.VirtualOnly,
		HolderIDs:      scope.VisibleEmployeeIDs(),
	}
	assets, err := s.Repo.FindAssets(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.attachCategoryName(ctx, assets...)
	return assets, nil
}

func (s *Service) ArchiveAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	return s.setExplicitStatus(ctx, scope, id, model.StatusArchived)
}

// RestoreAsset brings an archived or retired asset back: available when
// nothing is actively assigned, assigned otherwise.
func (s *Service) RestoreAsset(ctx context.Context, scope model.AccessScope, id string) (*model.Asset, error) {
	if err := requireCapability(scope, model.CapManageAssets); err != nil {
		return nil, err
	}
	asset, err := s.Repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}

	active, err := s.Repo.CountActiveAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	status := model.StatusAvailable
	if active > 0 {
		status = model.StatusAssigned
	}
	if err := s.Repo.SetAssetStatus(ctx, id, status, scope.ActorID); err != nil {
		return nil, err
	}
	asset.Status = status
	util.GetLogger().Info("asset restored", "asset", id, "status", status, "actor", scope.ActorID)
	return asset, nil
}

// TransitionAssetStatus applies an explicit sticky transition
// (maintenance, retired, lost).
func (s *Service) TransitionAssetStatus(ctx context.Context, scope model.AccessScope, id, status string) (*model.Asset, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case model.StatusMaintenance, model.StatusRetired, model.StatusLost:
	default:
		return nil, fmt.Errorf("%w: status must be maintenance, retired or lost", ErrValidation)
	}
	return s.setExplicitStatus(ctx, scope, id, status)
}

func (s *Service) setExplicitStatus(ctx context.Context, scope model.AccessScope, id, status string) (*model.Asset, error) {
	if err := requireCapability(scope, model.CapManageAssets); err != nil {
		return nil, err
	}
	asset, err := s.Repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: asset", ErrNotFound)
	}
	if err := s.Repo.SetAssetStatus(ctx, id, status, scope.ActorID); err != nil {
		return nil, err
	}
	asset.Status = status
	util.GetLogger().Info("asset status transition", "asset", id, "status", status, "actor", scope.ActorID)
	return asset, nil
}

// CreateCategory is idempotent on the normalized name: creating "Laptop"
// when "laptop" exists returns the existing category.
func (s *Service) CreateCategory(ctx context.Context, scope model.AccessScope, req model.CreateCategoryReq) (*model.AssetCategory, error) {
	if err := requireCapability(scope, model.CapManageCategories); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	existing, err := s.Repo.GetCategoryByName(ctx, req.NormalizedName())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	category := &model.AssetCategory{
		Name:      req.Name,
		NameLower: req.NormalizedName(),
		CreatedBy: scope.ActorID,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent create; the winner serves.
			return s.Repo.GetCategoryByName(ctx, req.NormalizedName())
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, scope model.AccessScope) ([]*model.AssetCategory, error) {
	if err := requireActor(scope); err != nil {
		return nil, err
	}
	return s.Repo.FindCategories(ctx)
}
