package repository

import (
	"context"
	"errors"

	"cardquest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository holds fully registered users. A nil user with a nil
// error means no such user exists.
type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.StoredUser, error) {
	var user models.StoredUser
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByCardHash(ctx context.Context, cardHash string) (*models.StoredUser, error) {
	var user models.StoredUser
	err := r.Col.FindOne(ctx, bson.M{"card_hash": cardHash}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.StoredUser) error {
	_, err := r.Col.InsertOne(ctx, user)
	return err
}
