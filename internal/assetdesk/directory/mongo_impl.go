package directory

import (
	"context"

	"assetdesk/internal/assetdesk/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectory reads the employees collection maintained by the HR
// console. No writes happen from this service.
type MongoDirectory struct {
	Employees *mongo.Collection
}

func NewMongoDirectory(db *mongo.Database, collectionName string) *MongoDirectory {
	return &MongoDirectory{Employees: db.Collection(collectionName)}
}

func idFilter(employeeID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(employeeID); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": employeeID}
}

func (d *MongoDirectory) Get(ctx context.Context, employeeID string) (*model.EmployeeInfo, error) {
	var emp model.EmployeeInfo
	err := d.Employees.FindOne(ctx, idFilter(employeeID)).Decode(&emp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (d *MongoDirectory) DirectReports(ctx context.Context, managerID string) ([]string, error) {
	cursor, err := d.Employees.Find(ctx, bson.M{"manager_id": managerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []string
	for cursor.Next(ctx) {
		var emp model.EmployeeInfo
		if err := cursor.Decode(&emp); err != nil {
			return nil, err
		}
		reports = append(reports, emp.ID)
	}
	return reports, cursor.Err()
}

func (d *MongoDirectory) List(ctx context.Context) ([]*model.EmployeeInfo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := d.Employees.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []*model.EmployeeInfo
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
