package repository

import (
	"context"
	"time"

	"assetdesk/internal/assetdesk/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateRequest(ctx context.Context, req *model.AssetRequest) error {
	now := time.Now()
	req.ID = primitive.NewObjectID().Hex()
	req.CreatedAt = now
	req.UpdatedAt = now
	_, err := r.Requests.InsertOne(ctx, req)
	return err
}

func (r *MongoRepository) GetRequest(ctx context.Context, id string) (*model.AssetRequest, error) {
	var req model.AssetRequest
	err := r.Requests.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *MongoRepository) UpdateRequest(ctx context.Context, req *model.AssetRequest) error {
	req.UpdatedAt = time.Now()
	res, err := r.Requests.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindRequests(ctx context.Context, filter model.RequestFilter) ([]*model.AssetRequest, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if clause := in(filter.RequesterIDs); clause != nil {
		query["requester_id"] = clause
	}
	cursor, err := r.Requests.Find(ctx, query)
	return decodeAll[model.AssetRequest](ctx, cursor, err)
}

// FulfillRequest commits the request transition and the ledger fan-out
// in one transaction.
func (r *MongoRepository) FulfillRequest(ctx context.Context, req *model.AssetRequest, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		req.UpdatedAt = time.Now()
		res, err := r.Requests.ReplaceOne(sessCtx, bson.M{"_id": req.ID}, req)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

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
		return nil, r.SetAssetStatus(sessCtx, assetID, assetStatus, req.FulfilledBy)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) CreateComplaint(ctx context.Context, complaint *model.AssetComplaint) error {
	now := time.Now()
	complaint.ID = primitive.NewObjectID().Hex()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now
	_, err := r.Complaints.InsertOne(ctx, complaint)
	return err
}

func (r *MongoRepository) GetComplaint(ctx context.Context, id string) (*model.AssetComplaint, error) {
	var complaint model.AssetComplaint
	err := r.Complaints.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *MongoRepository) UpdateComplaint(ctx context.Context, complaint *model.AssetComplaint) error {
	complaint.UpdatedAt = time.Now()
	res, err := r.Complaints.ReplaceOne(ctx, bson.M{"_id": complaint.ID}, complaint)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindComplaints(ctx context.Context, filter model.ComplaintFilter) ([]*model.AssetComplaint, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.AssetID != "" {
		query["asset_id"] = filter.AssetID
	}
	if clause := in(filter.EmployeeIDs); clause != nil {
		query["employee_id"] = clause
	}
	cursor, err := r.Complaints.Find(ctx, query)
	return decodeAll[model.AssetComplaint](ctx, cursor, err)
}
