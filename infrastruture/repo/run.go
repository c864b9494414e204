package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dmn "github.com/davidvelascogarcia/hns-go/domain"
)

// RunRepo handles the persistence of navigation run records.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// Save inserts or updates a run record.
// If the run already exists, it updates the existing record.
// If the run does not exist, it adds a new record.
func (r *RunRepo) Save(run *dmn.Run) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": run.ID}
	update := bson.M{
		"$set": bson.M{
			"mapFile":    run.MapFile,
			"outcome":    run.Outcome,
			"steps":      run.Steps,
			"elapsedMs":  run.ElapsedMs,
			"commands":   run.Commands,
			"startedAt":  run.StartedAt,
			"finishedAt": run.FinishedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a run by its ID.
// Returns an error if the run is not found or if an unexpected error occurs.
func (r *RunRepo) ByID(id uuid.UUID) (*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var run dmn.Run
	if err := r.collection.FindOne(ctx, filter).Decode(&run); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("run not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &run, nil
}
