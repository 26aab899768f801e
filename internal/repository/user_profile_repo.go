package repository

import (
	"SocialMapp/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserProfileRepo interface {
	GetProfile(ctx context.Context, accountID string) (*model.UserProfile, error)
	UpsertNickname(ctx context.Context, accountID, nickname, email string, updatedAt time.Time) error
}

type userProfileRepoImpl struct {
	col *mongo.Collection
}

func NewUserProfileRepo(db *mongo.Database) UserProfileRepo {
	return &userProfileRepoImpl{
		col: db.Collection(userCollection),
	}
}

func (s *userProfileRepoImpl) GetProfile(ctx context.Context, accountID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := s.col.FindOne(ctx, bson.M{"_id": accountID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find user profile")
	}
	return &profile, nil
}

// UpsertNickname 合并写入, 只覆盖 nickname/email/updated_at 三个字段
func (s *userProfileRepoImpl) UpsertNickname(ctx context.Context, accountID, nickname, email string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"nickname":   nickname,
		"email":      email,
		"updated_at": updatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": accountID}, update, opts); err != nil {
		return errors.Wrap(err, "upsert user profile")
	}
	return nil
}
