package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

const taskCollection = "tasks"

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(taskCollection)}
}

type taskDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	UserID      primitive.ObjectID `bson:"user_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d taskDoc) toDomain() *domain.Task {
	return &domain.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		UserID:      d.UserID.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(task.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad owner id", domain.ErrValidation)
	}

	now := time.Now().UTC()
	doc := taskDoc{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		UserID:      owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("insert task: %w", err))
	}

	created := *task
	created.CreatedAt = now
	created.UpdatedAt = now
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// idFilter builds the {_id, user_id?} filter used by every per-record
// operation. An unknown id shape or owner id shape behaves like a miss.
func idFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}
	filter := bson.M{"_id": oid}
	if ownerID != "" {
		owner, err := primitive.ObjectIDFromHex(ownerID)
		if err != nil {
			return nil, domain.ErrTaskNotFound
		}
		filter["user_id"] = owner
	}
	return filter, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc taskDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, mapStoreErr(fmt.Errorf("find task: %w", err))
	}
	return doc.toDomain(), nil
}

func listFilter(f domain.TaskFilter) (bson.M, error) {
	filter := bson.M{}
	if f.OwnerID != "" {
		owner, err := primitive.ObjectIDFromHex(f.OwnerID)
		if err != nil {
			return nil, domain.ErrTaskNotFound
		}
		filter["user_id"] = owner
	}
	if f.Completed != nil {
		filter["completed"] = *f.Completed
	}
	created := bson.M{}
	if !f.From.IsZero() {
		created["$gte"] = f.From
	}
	if !f.To.IsZero() {
		created["$lte"] = f.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}
	return filter, nil
}

// List returns tasks matching filter, oldest first.
func (r *TaskRepository) List(ctx context.Context, f domain.TaskFilter) ([]*domain.Task, error) {
	filter, err := listFilter(f)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("list tasks: %w", err))
	}
	defer cursor.Close(ctx)

	tasks := []*domain.Task{}
	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, cursor.Err()
}

func (r *TaskRepository) Update(ctx context.Context, id, ownerID string, update ports.TaskUpdate) (*domain.Task, error) {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc taskDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, mapStoreErr(fmt.Errorf("update task: %w", err))
	}
	return doc.toDomain(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	filter, err := idFilter(id, ownerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return mapStoreErr(fmt.Errorf("delete task: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context, f domain.TaskFilter) (int64, error) {
	filter, err := listFilter(f)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, mapStoreErr(fmt.Errorf("count tasks: %w", err))
	}
	return n, nil
}

// EnsureIndexes creates the indexes list queries depend on.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
