package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) error
	ListUsernames(ctx context.Context) ([]string, error)
	ListSkillPairs(ctx context.Context) ([]SkillEntry, error)
	FindBySkill(ctx context.Context, skillName string) ([]SkillTeacher, error)
	SearchUsers(ctx context.Context, pattern string) ([]*User, error)
	DistinctSkills(ctx context.Context, pattern string) ([]string, error)
	FindUsersOfferingAny(ctx context.Context, excludeUsername string, skills []string) ([]*User, error)
}

// CreateUser performs a single conditional insert. Uniqueness of the username
// is guaranteed by the unique index, so two concurrent registrations cannot
// both succeed; the loser surfaces as ErrDuplicateUsername.
func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	if err := user.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare user for creation: %w", err)
	}
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	_, err = col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to insert user into database: %w", err)
	}
	return user, nil
}

func (mdb *MongodbRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return &user, nil
}

// UpdateProfile replaces location, bio, skills and interests wholesale. It
// never merges with the stored values.
func (mdb *MongodbRepo) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) error {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	result, err := col.UpdateOne(ctx, bson.M{"username": username}, bson.M{
		"$set": bson.M{
			"location":   update.Location,
			"bio":        update.Bio,
			"skills":     update.Skills,
			"interests":  update.Interests,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListUsernames(ctx context.Context) ([]string, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"username": 1}).
		SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer cursor.Close(ctx)

	usernames := []string{}
	for cursor.Next(ctx) {
		var doc struct {
			Username string `bson:"username"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		usernames = append(usernames, doc.Username)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return usernames, nil
}

// ListSkillPairs returns one entry per (username, skill) combination across
// all users. Identical skill names from different users stay separate.
func (mdb *MongodbRepo) ListSkillPairs(ctx context.Context) ([]SkillEntry, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetProjection(bson.M{"username": 1, "skills": 1})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	defer cursor.Close(ctx)

	pairs := []SkillEntry{}
	for cursor.Next(ctx) {
		var doc struct {
			Username string   `bson:"username"`
			Skills   []string `bson:"skills"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding user skills: %w", err)
		}
		for _, skill := range doc.Skills {
			if skill == "" {
				continue
			}
			pairs = append(pairs, SkillEntry{Username: doc.Username, Skill: skill})
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return pairs, nil
}

// FindBySkill matches the skill name exactly and case-sensitively.
func (mdb *MongodbRepo) FindBySkill(ctx context.Context, skillName string) ([]SkillTeacher, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetProjection(bson.M{"username": 1, "bio": 1})
	cursor, err := col.Find(ctx, bson.M{"skills": skillName}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding users by skill: %w", err)
	}
	defer cursor.Close(ctx)

	teachers := []SkillTeacher{}
	for cursor.Next(ctx) {
		var teacher SkillTeacher
		if err := cursor.Decode(&teacher); err != nil {
			return nil, fmt.Errorf("error decoding teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return teachers, nil
}

// SearchUsers matches usernames against an already-escaped regex pattern,
// case-insensitively.
func (mdb *MongodbRepo) SearchUsers(ctx context.Context, pattern string) ([]*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{"username": primitive.Regex{Pattern: pattern, Options: "i"}}
	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*User{}
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, &user)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}

// DistinctSkills returns the distinct skill strings across all users that
// match the given pattern, case-insensitively.
func (mdb *MongodbRepo) DistinctSkills(ctx context.Context, pattern string) ([]string, error) {
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{"skills": primitive.Regex{Pattern: pattern, Options: "i"}}
	values, err := col.Distinct(ctx, "skills", filter)
	if err != nil {
		return nil, fmt.Errorf("error collecting distinct skills: %w", err)
	}

	skills := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			skills = append(skills, s)
		}
	}
	return skills, nil
}

// FindUsersOfferingAny returns users other than excludeUsername whose skill
// set intersects the given list. The recommendation intersection itself is
// computed by the caller.
func (mdb *MongodbRepo) FindUsersOfferingAny(ctx context.Context, excludeUsername string, skills []string) ([]*User, error) {
	if len(skills) == 0 {
		return []*User{}, nil
	}
	col, err := mdb.GetCollection(ctx, DbName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{
		"username": bson.M{"$ne": excludeUsername},
		"skills":   bson.M{"$in": skills},
	}
	opts := options.Find().SetProjection(bson.M{"username": 1, "skills": 1})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding users offering skills: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*User{}
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		users = append(users, &user)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return users, nil
}
