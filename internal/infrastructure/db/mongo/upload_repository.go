package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

const uploadsCollection = "uploads"

type UploadRepository struct {
	coll *mongo.Collection
}

func NewUploadRepository(db *mongo.Database) *UploadRepository {
	return &UploadRepository{coll: db.Collection(uploadsCollection)}
}

type uploadDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	Filename   string             `bson:"filename"`
	StorageURL string             `bson:"storage_url"`
	CreatedAt  int64              `bson:"created_at"`
}

func (d uploadDoc) toDomain() *domain.Upload {
	return &domain.Upload{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Filename:   d.Filename,
		StorageURL: d.StorageURL,
		CreatedAt:  unixToTime(d.CreatedAt),
	}
}

func (r *UploadRepository) Create(ctx context.Context, up *domain.Upload) (*domain.Upload, error) {
	doc := uploadDoc{
		ID:         primitive.NewObjectID(),
		UserID:     up.UserID,
		Filename:   up.Filename,
		StorageURL: up.StorageURL,
		CreatedAt:  up.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all upload records, newest first.
func (r *UploadRepository) List(ctx context.Context) ([]*domain.Upload, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer cur.Close(ctx)

	var ups []*domain.Upload
	for cur.Next(ctx) {
		var doc uploadDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode upload: %w", err)
		}
		ups = append(ups, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return ups, nil
}

func (r *UploadRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete uploads by user: %w", err)
	}
	return nil
}
