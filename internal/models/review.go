package models

import (
	"fmt"
	"time"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is an immutable rating left by one user about another.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reviewer     string             `bson:"reviewer" json:"reviewer" validate:"required"`
	ReviewedUser string             `bson:"reviewed_user" json:"reviewedUser" validate:"required"`
	Rating       int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment      string             `bson:"comment" json:"comment" validate:"required"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}

func (r *Review) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	r.Timestamp = time.Now().UTC()
	return nil
}

func (r *Review) Sanitize() {
	r.Reviewer = helpers.StringTrim(r.Reviewer)
	r.ReviewedUser = helpers.StringTrim(r.ReviewedUser)
	r.Comment = helpers.StringTrim(r.Comment)
}

func (r Review) ValidateReview() error {
	if r.Reviewer == "" {
		return fmt.Errorf("%w: reviewer is required", ErrInvalidInput)
	}
	if r.ReviewedUser == "" {
		return fmt.Errorf("%w: reviewed user is required", ErrInvalidInput)
	}
	if r.Reviewer == r.ReviewedUser {
		return fmt.Errorf("%w: users cannot review themselves", ErrInvalidInput)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if r.Comment == "" {
		return fmt.Errorf("%w: comment must not be empty", ErrInvalidInput)
	}
	return nil
}
