package models

import (
	"fmt"
	"time"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusConfirmed = "confirmed"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusCompleted = "completed"
)

// Schedule is a booking request for a teaching session. Creation always stores
// status "pending" no matter what the request body carries; there is no update
// or delete endpoint, so the status is permanent afterwards.
type Schedule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Skill     string             `bson:"skill" json:"skill" validate:"required"`
	Teacher   string             `bson:"teacher" json:"teacher" validate:"required"`
	Learner   string             `bson:"learner" json:"learner" validate:"required"`
	StartTime time.Time          `bson:"start_time" json:"startTime" validate:"required"`
	EndTime   time.Time          `bson:"end_time" json:"endTime" validate:"required"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (s *Schedule) BeforeCreate() error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	s.Status = ScheduleStatusPending
	s.CreatedAt = time.Now().UTC()
	return nil
}

func (s *Schedule) Sanitize() {
	s.Skill = helpers.StringTrim(s.Skill)
	s.Teacher = helpers.StringTrim(s.Teacher)
	s.Learner = helpers.StringTrim(s.Learner)
}

func (s Schedule) ValidateSchedule() error {
	if s.Skill == "" {
		return fmt.Errorf("%w: skill is required", ErrInvalidInput)
	}
	if s.Teacher == "" {
		return fmt.Errorf("%w: teacher is required", ErrInvalidInput)
	}
	if s.Learner == "" {
		return fmt.Errorf("%w: learner is required", ErrInvalidInput)
	}
	if s.Teacher == s.Learner {
		return fmt.Errorf("%w: teacher and learner must be different users", ErrInvalidInput)
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}
	if !s.StartTime.Before(s.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}
	return nil
}
