package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	GetReviewsForUser(ctx context.Context, reviewedUser string) ([]*Review, error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}
	if err := review.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare review for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}
	_, err = col.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review into database: %w", err)
	}
	return review, nil
}

// GetReviewsForUser returns all reviews about the user, newest first.
func (mdb *MongodbRepo) GetReviewsForUser(ctx context.Context, reviewedUser string) ([]*Review, error) {
	col, err := mdb.GetCollection(ctx, DbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"reviewed_user": reviewedUser}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*Review{}
	for cursor.Next(ctx) {
		var review Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("error decoding review: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reviews, nil
}
