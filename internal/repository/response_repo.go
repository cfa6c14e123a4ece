package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"panorama/internal/model"
)

// ResponseRepo handles MongoDB operations for raw response rows
type ResponseRepo interface {
	InsertMany(ctx context.Context, responses []model.Response) error
	GetByPanoramaID(ctx context.Context, panoramaID string) ([]model.Response, error)
	GetByQuestionID(ctx context.Context, panoramaID, questionID string) ([]model.Response, error)
	CountByPanoramaID(ctx context.Context, panoramaID string) (int64, error)
	DeleteByPanoramaID(ctx context.Context, panoramaID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) InsertMany(ctx context.Context, responses []model.Response) error {
	if len(responses) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(responses))
	for i := range responses {
		if responses[i].CreatedAt.IsZero() {
			responses[i].CreatedAt = time.Now()
		}
		docs = append(docs, responses[i])
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *responseRepo) GetByPanoramaID(ctx context.Context, panoramaID string) ([]model.Response, error) {
	return r.find(ctx, bson.M{"panoramaId": panoramaID})
}

func (r *responseRepo) GetByQuestionID(ctx context.Context, panoramaID, questionID string) ([]model.Response, error) {
	return r.find(ctx, bson.M{"panoramaId": panoramaID, "questionId": questionID})
}

func (r *responseRepo) CountByPanoramaID(ctx context.Context, panoramaID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"panoramaId": panoramaID})
}

func (r *responseRepo) DeleteByPanoramaID(ctx context.Context, panoramaID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"panoramaId": panoramaID})
	return err
}

func (r *responseRepo) find(ctx context.Context, filter bson.M) ([]model.Response, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
