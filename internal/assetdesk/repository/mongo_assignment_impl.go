package repository

import (
	"context"
	"time"

	"assetdesk/internal/assetdesk/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateAssignments(ctx context.Context, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		now := time.Now()
		docs := make([]interface{}, 0, len(entries))
		for i, entry := range entries {
			entry.ID = primitive.NewObjectID().Hex()
			entry.CreatedAt = now
			entry.UpdatedAt = now
			logs[i].AssignmentID = entry.ID
			docs = append(docs, entry)
		}
		if _, err := r.Assignments.InsertMany(sessCtx, docs); err != nil {
			return nil, err
		}
		if err := r.appendLogs(sessCtx, logs); err != nil {
			return nil, err
		}
		return nil, r.SetAssetStatus(sessCtx, assetID, assetStatus, entries[0].AssignedBy)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) appendLogs(ctx context.Context, logs []*model.AssignmentLog) error {
	now := time.Now()
	docs := make([]interface{}, 0, len(logs))
	for _, l := range logs {
		l.ID = primitive.NewObjectID().Hex()
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
		docs = append(docs, l)
	}
	_, err := r.Logs.InsertMany(ctx, docs)
	return err
}

func (r *MongoRepository) GetAssignment(ctx context.Context, id string) (*model.AssetAssignment, error) {
	var entry model.AssetAssignment
	err := r.Assignments.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *MongoRepository) FindAssignments(ctx context.Context, filter model.AssignmentFilter) ([]*model.AssetAssignment, error) {
	query := bson.M{}
	if filter.AssetID != "" {
		query["asset_id"] = filter.AssetID
	}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if clause := in(filter.EmployeeIDs); clause != nil {
		query["employee_id"] = clause
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}
	cursor, err := r.Assignments.Find(ctx, query)
	return decodeAll[model.AssetAssignment](ctx, cursor, err)
}

func (r *MongoRepository) CountActiveAssignments(ctx context.Context, assetID string) (int64, error) {
	return r.Assignments.CountDocuments(ctx, bson.M{"asset_id": assetID, "is_active": true})
}

func (r *MongoRepository) UpdateAssignment(ctx context.Context, entry *model.AssetAssignment) error {
	entry.UpdatedAt = time.Now()
	res, err := r.Assignments.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) DeactivateAssignments(ctx context.Context, ids []string, stamp ReturnStamp, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		update := bson.M{
			"$set": bson.M{
				"is_active":              false,
				"return_date":            stamp.Date,
				"return_condition":       stamp.Condition,
				"return_condition_notes": stamp.Notes,
				"updated_at":             time.Now(),
			},
		}
		res, err := r.Assignments.UpdateMany(sessCtx, bson.M{"_id": bson.M{"$in": ids}}, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount != int64(len(ids)) {
			return nil, mongo.ErrNoDocuments
		}
		if err := r.appendLogs(sessCtx, logs); err != nil {
			return nil, err
		}
		return nil, r.SetAssetStatus(sessCtx, assetID, assetStatus, "")
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) DeleteAssignment(ctx context.Context, id string, log *model.AssignmentLog, assetID, assetStatus string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Assignments.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		if err := r.appendLogs(sessCtx, []*model.AssignmentLog{log}); err != nil {
			return nil, err
		}
		return nil, r.SetAssetStatus(sessCtx, assetID, assetStatus, "")
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) FindLogs(ctx context.Context, filter model.LogFilter) ([]*model.AssignmentLog, error) {
	query := bson.M{}
	if filter.AssetID != "" {
		query["asset_id"] = filter.AssetID
	}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if clause := in(filter.EmployeeIDs); clause != nil {
		query["employee_id"] = clause
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Logs.Find(ctx, query, opts)
	return decodeAll[model.AssignmentLog](ctx, cursor, err)
}
