package repository

import (
	"context"
	"time"

	"assetdesk/internal/assetdesk/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) CreateAsset(ctx context.Context, asset *model.Asset) error {
	now := time.Now()
	asset.ID = primitive.NewObjectID().Hex()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	_, err := r.Assets.InsertOne(ctx, asset)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	var asset model.Asset
	err := r.Assets.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *MongoRepository) UpdateAsset(ctx context.Context, asset *model.Asset) error {
	asset.UpdatedAt = time.Now()
	res, err := r.Assets.ReplaceOne(ctx, bson.M{"_id": asset.ID}, asset)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) FindAssets(ctx context.Context, filter model.AssetFilter) ([]*model.Asset, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.Condition != "" {
		query["condition"] = filter.Condition
	}
	if filter.VirtualOnly {
		query["vm"] = bson.M{"$ne": nil}
	} else if !filter.IncludeVirtual {
		query["vm"] = nil
	}

	if filter.HolderIDs != nil {
		// Team scoping: restrict to assets with an active entry held by
		// one of the visible employees.
		heldIDs, err := r.activeAssetIDsFor(ctx, filter.HolderIDs)
		if err != nil {
			return nil, err
		}
		query["_id"] = bson.M{"$in": heldIDs}
	}

	cursor, err := r.Assets.Find(ctx, query)
	return decodeAll[model.Asset](ctx, cursor, err)
}

func (r *MongoRepository) activeAssetIDsFor(ctx context.Context, employeeIDs []string) ([]string, error) {
	cursor, err := r.Assignments.Find(ctx, bson.M{
		"employee_id": bson.M{"$in": employeeIDs},
		"is_active":   true,
	})
	entries, err := decodeAll[model.AssetAssignment](ctx, cursor, err)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.AssetID] {
			seen[e.AssetID] = true
			ids = append(ids, e.AssetID)
		}
	}
	return ids, nil
}

func (r *MongoRepository) SetAssetStatus(ctx context.Context, id, status, updatedBy string) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}
	res, err := r.Assets.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) CreateCategory(ctx context.Context, category *model.AssetCategory) error {
	category.ID = primitive.NewObjectID().Hex()
	category.CreatedAt = time.Now()
	_, err := r.Categories.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetCategory(ctx context.Context, id string) (*model.AssetCategory, error) {
	var category model.AssetCategory
	err := r.Categories.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *MongoRepository) GetCategoryByName(ctx context.Context, nameLower string) (*model.AssetCategory, error) {
	var category model.AssetCategory
	err := r.Categories.FindOne(ctx, bson.M{"name_lower": nameLower}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *MongoRepository) FindCategories(ctx context.Context) ([]*model.AssetCategory, error) {
	cursor, err := r.Categories.Find(ctx, bson.M{})
	return decodeAll[model.AssetCategory](ctx, cursor, err)
}
