package repository

import (
	"context"
	"errors"
	"time"

	"assetdesk/internal/assetdesk/model"
)

var ErrDuplicate = errors.New("duplicate record")

// ReturnStamp carries the fields stamped on a ledger entry when it is
// returned.
type ReturnStamp struct {
	Date      time.Time
	Condition string
	Notes     string
}

// Repository owns assets, categories, the assignment ledger and the two
// workflow collections. Get methods return (nil, nil) when the record
// does not exist.
type Repository interface {
	// Assets
	CreateAsset(ctx context.Context, asset *model.Asset) error
	GetAsset(ctx context.Context, id string) (*model.Asset, error)
	UpdateAsset(ctx context.Context, asset *model.Asset) error
	FindAssets(ctx context.Context, filter model.AssetFilter) ([]*model.Asset, error)
	SetAssetStatus(ctx context.Context, id, status, updatedBy string) error

	// Categories
	CreateCategory(ctx context.Context, category *model.AssetCategory) error
	GetCategory(ctx context.Context, id string) (*model.AssetCategory, error)
	GetCategoryByName(ctx context.Context, nameLower string) (*model.AssetCategory, error)
	FindCategories(ctx context.Context) ([]*model.AssetCategory, error)

	// Assignment ledger. CreateAssignments inserts every entry, one log
	// row each (logs[i] belongs to entries[i]), and sets the asset
	// status, all in one transaction.
	CreateAssignments(ctx context.Context, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error
	GetAssignment(ctx context.Context, id string) (*model.AssetAssignment, error)
	FindAssignments(ctx context.Context, filter model.AssignmentFilter) ([]*model.AssetAssignment, error)
	CountActiveAssignments(ctx context.Context, assetID string) (int64, error)
	UpdateAssignment(ctx context.Context, entry *model.AssetAssignment) error
	// DeactivateAssignments stamps return fields on the given entries,
	// appends their log rows and sets the asset status atomically.
	DeactivateAssignments(ctx context.Context, ids []string, stamp ReturnStamp, logs []*model.AssignmentLog, assetID, assetStatus string) error
	// DeleteAssignment hard-deletes one entry, appends its log row and
	// sets the asset status atomically.
	DeleteAssignment(ctx context.Context, id string, log *model.AssignmentLog, assetID, assetStatus string) error

	// Requests
	CreateRequest(ctx context.Context, req *model.AssetRequest) error
	GetRequest(ctx context.Context, id string) (*model.AssetRequest, error)
	UpdateRequest(ctx context.Context, req *model.AssetRequest) error
	FindRequests(ctx context.Context, filter model.RequestFilter) ([]*model.AssetRequest, error)
	// FulfillRequest persists the fulfilled request together with the
	// ledger fan-out in one transaction, so a fulfilled-but-unassigned
	// state cannot exist.
	FulfillRequest(ctx context.Context, req *model.AssetRequest, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error

	// Complaints
	CreateComplaint(ctx context.Context, complaint *model.AssetComplaint) error
	GetComplaint(ctx context.Context, id string) (*model.AssetComplaint, error)
	UpdateComplaint(ctx context.Context, complaint *model.AssetComplaint) error
	FindComplaints(ctx context.Context, filter model.ComplaintFilter) ([]*model.AssetComplaint, error)

	EnsureIndexes(ctx context.Context) error
}

// LogRepository is the read side of the append-only assignment log. Log
// rows are written inside the ledger transactions above; the aggregator
// only ever reads them.
type LogRepository interface {
	FindLogs(ctx context.Context, filter model.LogFilter) ([]*model.AssignmentLog, error)
}
