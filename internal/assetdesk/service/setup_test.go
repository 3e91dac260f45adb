package service

import (
	"context"
	"testing"
	"time"

	"assetdesk/internal/assetdesk/model"

	"github.com/stretchr/testify/require"
)

func newTestService(employees ...*model.EmployeeInfo) (*Service, *fakeRepo, *fakeDirectory) {
	repo := newFakeRepo()
	dir := newFakeDirectory(employees...)
	return NewService(repo, repo, dir), repo, dir
}

func adminScope(actorID string) model.AccessScope {
	return model.AccessScope{
		ActorID:        actorID,
		FullVisibility: true,
		Capabilities: map[string]bool{
			model.CapManageAssets:      true,
			model.CapManageCategories:  true,
			model.CapManageAssignments: true,
			model.CapDeleteAssignments: true,
			model.CapApproveRequests:   true,
			model.CapResolveComplaints: true,
			model.CapViewHistory:       true,
		},
	}
}

func managerScope(actorID string, reports ...string) model.AccessScope {
	return model.AccessScope{
		ActorID:    actorID,
		TeamFilter: append([]string{actorID}, reports...),
		Capabilities: map[string]bool{
			model.CapManageAssignments: true,
			model.CapApproveRequests:   true,
			model.CapResolveComplaints: true,
			model.CapViewHistory:       true,
		},
	}
}

func employeeScope(actorID string) model.AccessScope {
	return model.AccessScope{
		ActorID:      actorID,
		TeamFilter:   []string{actorID},
		Capabilities: map[string]bool{},
	}
}

func seedCategory(t *testing.T, s *Service, name string) *model.AssetCategory {
	t.Helper()
	category, err := s.CreateCategory(context.Background(), adminScope("admin_1"), model.CreateCategoryReq{Name: name})
	require.NoError(t, err)
	return category
}

func seedAsset(t *testing.T, s *Service, tag, categoryID string) *model.Asset {
	t.Helper()
	asset, err := s.CreateAsset(context.Background(), adminScope("admin_1"), model.CreateAssetReq{
		Tag:        tag,
		Name:       "Asset " + tag,
		CategoryID: categoryID,
		Condition:  model.ConditionGood,
	})
	require.NoError(t, err)
	return asset
}

func futureDate(d time.Duration) *time.Time {
	t := time.Now().Add(d)
	return &t
}
