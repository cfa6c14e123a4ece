package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"panorama/internal/model"
)

// PanoramaRepo handles MongoDB operations for panoramas. Questions are
// embedded in the panorama document.
type PanoramaRepo interface {
	Create(ctx context.Context, p *model.Panorama) (string, error)
	GetByID(ctx context.Context, id string) (*model.Panorama, error)
	GetByOrganizerID(ctx context.Context, organizerID string) ([]*model.Panorama, error)
	Update(ctx context.Context, p *model.Panorama) error
	Delete(ctx context.Context, id string) error
}

type panoramaRepo struct {
	collection *mongo.Collection
}

// NewPanoramaRepo creates a new panorama repository
func NewPanoramaRepo(db *mongo.Database) PanoramaRepo {
	return &panoramaRepo{
		collection: db.Collection("panoramas"),
	}
}

func (r *panoramaRepo) Create(ctx context.Context, p *model.Panorama) (string, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *panoramaRepo) GetByID(ctx context.Context, id string) (*model.Panorama, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var p model.Panorama
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (r *panoramaRepo) GetByOrganizerID(ctx context.Context, organizerID string) ([]*model.Panorama, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organizerId": organizerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var panoramas []*model.Panorama
	if err := cursor.All(ctx, &panoramas); err != nil {
		return nil, err
	}
	return panoramas, nil
}

func (r *panoramaRepo) Update(ctx context.Context, p *model.Panorama) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, p)
	return err
}

func (r *panoramaRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
