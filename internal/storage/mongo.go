package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LidiaAlemu/meditrack/internal"
)

// MongoStorage stores both entities in their own collections, scoped by the
// userId field. One document per record; updates touch single documents only.
type MongoStorage struct {
	client      *mongo.Client
	vitals      *mongo.Collection
	medications *mongo.Collection
	logger      internal.Logger
}

func NewMongoStorage(uri, dbName string, logger internal.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongo: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("failed to ping mongo: %v", err)
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoStorage{
		client:      client,
		vitals:      db.Collection("vitallogs"),
		medications: db.Collection("medications"),
		logger:      logger,
	}, nil
}

func (m *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// --- VitalLogRepository ---

func (m *MongoStorage) SaveVitalLog(ctx context.Context, log *internal.VitalLog) error {
	if _, err := m.vitals.InsertOne(ctx, log); err != nil {
		m.logger.Errorf("failed to insert vital log: %v", err)
		return err
	}
	return nil
}

func (m *MongoStorage) ListVitalLogs(ctx context.Context, userID string, limit int) ([]internal.VitalLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := m.vitals.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		m.logger.Errorf("failed to query vital logs: %v", err)
		return nil, err
	}
	logs := []internal.VitalLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		m.logger.Errorf("failed to decode vital logs: %v", err)
		return nil, err
	}
	return logs, nil
}

func (m *MongoStorage) DeleteVitalLog(ctx context.Context, userID, id string) error {
	res, err := m.vitals.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		m.logger.Errorf("failed to delete vital log: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// --- MedicationRepository ---

func (m *MongoStorage) SaveMedication(ctx context.Context, med *internal.Medication) error {
	if _, err := m.medications.InsertOne(ctx, med); err != nil {
		m.logger.Errorf("failed to insert medication: %v", err)
		return err
	}
	return nil
}

func (m *MongoStorage) ListMedications(ctx context.Context, userID string) ([]internal.Medication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.medications.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		m.logger.Errorf("failed to query medications: %v", err)
		return nil, err
	}
	meds := []internal.Medication{}
	if err := cursor.All(ctx, &meds); err != nil {
		m.logger.Errorf("failed to decode medications: %v", err)
		return nil, err
	}
	return meds, nil
}

func (m *MongoStorage) GetMedication(ctx context.Context, userID, id string) (*internal.Medication, error) {
	var med internal.Medication
	err := m.medications.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&med)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal.ErrNotFound
		}
		m.logger.Errorf("failed to get medication: %v", err)
		return nil, err
	}
	return &med, nil
}

func (m *MongoStorage) UpdateMedication(ctx context.Context, med *internal.Medication) error {
	res, err := m.medications.UpdateOne(ctx,
		bson.M{"_id": med.ID, "userId": med.UserID},
		bson.M{"$set": bson.M{"isTaken": med.IsTaken, "lastTaken": med.LastTaken}})
	if err != nil {
		m.logger.Errorf("failed to update medication: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return internal.ErrNotFound
	}
	return nil
}

func (m *MongoStorage) DeleteMedication(ctx context.Context, userID, id string) error {
	res, err := m.medications.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		m.logger.Errorf("failed to delete medication: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ VitalLogRepository = (*MongoStorage)(nil)
var _ MedicationRepository = (*MongoStorage)(nil)
