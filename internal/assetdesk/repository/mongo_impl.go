package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Assets      *mongo.Collection
	Categories  *mongo.Collection
	Assignments *mongo.Collection
	Logs        *mongo.Collection
	Requests    *mongo.Collection
	Complaints  *mongo.Collection
	Client      *mongo.Client // for multi-document transactions
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Assets:      db.Collection("assets"),
		Categories:  db.Collection("asset_categories"),
		Assignments: db.Collection("asset_assignments"),
		Logs:        db.Collection("assignment_logs"),
		Requests:    db.Collection("asset_requests"),
		Complaints:  db.Collection("asset_complaints"),
		Client:      db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// Asset tags are human-assigned and unique.
	idxAssetTag := mongo.IndexModel{
		Keys:    bson.D{{Key: "tag", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_asset_tag"),
	}
	if _, err := r.Assets.Indexes().CreateMany(ctx, []mongo.IndexModel{idxAssetTag}); err != nil {
		return err
	}

	// Category names are unique case-insensitively via the normalized key.
	idxCategoryName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name_lower", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_category_name_lower"),
	}
	if _, err := r.Categories.Indexes().CreateMany(ctx, []mongo.IndexModel{idxCategoryName}); err != nil {
		return err
	}

	idxAssignments := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "asset_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("idx_assignment_asset_active"),
		},
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("idx_assignment_employee_active"),
		},
	}
	if _, err := r.Assignments.Indexes().CreateMany(ctx, idxAssignments); err != nil {
		return err
	}

	idxLogs := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "employee_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_log_employee_time"),
		},
		{
			Keys: bson.D{
				{Key: "asset_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_log_asset_time"),
		},
	}
	if _, err := r.Logs.Indexes().CreateMany(ctx, idxLogs); err != nil {
		return err
	}

	idxRequests := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_request_status_time"),
	}
	if _, err := r.Requests.Indexes().CreateMany(ctx, []mongo.IndexModel{idxRequests}); err != nil {
		return err
	}

	idxComplaints := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_complaint_status_time"),
	}
	_, err := r.Complaints.Indexes().CreateMany(ctx, []mongo.IndexModel{idxComplaints})
	return err
}

// decodeAll drains a cursor into out and closes it.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, err error) ([]*T, error) {
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []*T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// in builds an $in filter clause, or nil when ids is nil (unrestricted).
func in(ids []string) interface{} {
	if ids == nil {
		return nil
	}
	return bson.M{"$in": ids}
}
