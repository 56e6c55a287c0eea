package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo interface {
	CreateMessage(ctx context.Context, message *Message) (*Message, error)
	GetConversation(ctx context.Context, userA, userB string) ([]*Message, error)
	RecentMessages(ctx context.Context, username string, limit int64) ([]*Message, error)
}

func (mdb *MongodbRepo) CreateMessage(ctx context.Context, message *Message) (*Message, error) {
	if err := message.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare message for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, DbName, MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}
	_, err = col.InsertOne(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message into database: %w", err)
	}
	return message, nil
}

// GetConversation returns every message between the two users in either
// direction, oldest first. The result is identical whichever way the pair is
// ordered.
func (mdb *MongodbRepo) GetConversation(ctx context.Context, userA, userB string) ([]*Message, error) {
	col, err := mdb.GetCollection(ctx, DbName, MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"sender": userA, "recipient": userB},
		bson.M{"sender": userB, "recipient": userA},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*Message{}
	for cursor.Next(ctx) {
		var msg Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("error decoding message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return messages, nil
}

// RecentMessages returns the newest messages involving the user in either
// direction, newest first.
func (mdb *MongodbRepo) RecentMessages(ctx context.Context, username string, limit int64) ([]*Message, error) {
	col, err := mdb.GetCollection(ctx, DbName, MessageColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"sender": username},
		bson.M{"recipient": username},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding recent messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []*Message{}
	for cursor.Next(ctx) {
		var msg Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("error decoding message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return messages, nil
}
