package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// Repository defines the interface for calculation report storage.
type Repository interface {
	SaveReport(ctx context.Context, report models.Report) error
	RecentReports(ctx context.Context, limit int64) ([]models.Report, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "calculation_reports",
	}, nil
}

// SaveReport stores one calculation report.
func (r *MongoDBRepository) SaveReport(ctx context.Context, report models.Report) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	_, err := collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert calculation report: %w", err)
	}
	return nil
}

// RecentReports returns the newest reports first.
func (r *MongoDBRepository) RecentReports(ctx context.Context, limit int64) ([]models.Report, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}}).SetLimit(limit)
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculation reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode calculation reports: %w", err)
	}
	return reports, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// NopRepository discards reports. It is used when no archive is configured.
type NopRepository struct{}

// SaveReport does nothing.
func (NopRepository) SaveReport(context.Context, models.Report) error { return nil }

// RecentReports always returns an empty list.
func (NopRepository) RecentReports(context.Context, int64) ([]models.Report, error) {
	return []models.Report{}, nil
}
