package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleRepo interface {
	CreateSchedule(ctx context.Context, schedule *Schedule) (*Schedule, error)
	GetSchedulesByUser(ctx context.Context, username string) ([]*Schedule, error)
	UpcomingSchedules(ctx context.Context, username string, after time.Time, limit int64) ([]*Schedule, error)
}

func (mdb *MongodbRepo) CreateSchedule(ctx context.Context, schedule *Schedule) (*Schedule, error) {
	if err := schedule.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare schedule for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}
	_, err = col.InsertOne(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to insert schedule into database: %w", err)
	}
	return schedule, nil
}

// GetSchedulesByUser returns every schedule where the user appears as teacher
// or learner, ascending by start time.
func (mdb *MongodbRepo) GetSchedulesByUser(ctx context.Context, username string) ([]*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"teacher": username},
		bson.M{"learner": username},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding schedules: %w", err)
	}
	defer cursor.Close(ctx)

	schedules := []*Schedule{}
	for cursor.Next(ctx) {
		var s Schedule
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding schedule: %w", err)
		}
		schedules = append(schedules, &s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return schedules, nil
}

// UpcomingSchedules returns pending or confirmed sessions starting at or after
// the given instant, ascending by start time, capped at limit.
func (mdb *MongodbRepo) UpcomingSchedules(ctx context.Context, username string, after time.Time, limit int64) ([]*Schedule, error) {
	col, err := mdb.GetCollection(ctx, DbName, ScheduleColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{
		"$or": bson.A{
			bson.M{"teacher": username},
			bson.M{"learner": username},
		},
		"start_time": bson.M{"$gte": after},
		"status":     bson.M{"$in": bson.A{ScheduleStatusPending, ScheduleStatusConfirmed}},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetLimit(limit)
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding upcoming schedules: %w", err)
	}
	defer cursor.Close(ctx)

	schedules := []*Schedule{}
	for cursor.Next(ctx) {
		var s Schedule
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding schedule: %w", err)
		}
		schedules = append(schedules, &s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return schedules, nil
}
