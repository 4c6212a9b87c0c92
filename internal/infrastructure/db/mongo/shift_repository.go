package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

const shiftsCollection = "shifts"

type ShiftRepository struct {
	coll *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) *ShiftRepository {
	return &ShiftRepository{coll: db.Collection(shiftsCollection)}
}

type shiftDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	StartTime time.Time          `bson:"start_time"`
	EndTime   time.Time          `bson:"end_time"`
	Location  string             `bson:"location"`
	CreatedAt int64              `bson:"created_at"`
}

func (d shiftDoc) toDomain() *domain.Shift {
	return &domain.Shift{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		StartTime: d.StartTime.UTC(),
		EndTime:   d.EndTime.UTC(),
		Location:  d.Location,
		CreatedAt: unixToTime(d.CreatedAt),
	}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	doc := shiftDoc{
		ID:        primitive.NewObjectID(),
		UserID:    shift.UserID,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Location:  shift.Location,
		CreatedAt: shift.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert shift: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns shifts ordered by start time. An empty userID returns all
// shifts; the service layer decides who gets to pass what.
func (r *ShiftRepository) List(ctx context.Context, userID string) ([]*domain.Shift, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer cur.Close(ctx)

	var shifts []*domain.Shift
	for cur.Next(ctx) {
		var doc shiftDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode shift: %w", err)
		}
		shifts = append(shifts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrShiftNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete shifts by user: %w", err)
	}
	return nil
}

// EnsureIndexes creates the owner index used by scoped listings and the
// principal-delete cascade.
func (r *ShiftRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
