package models

import (
	"fmt"
	"time"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username     string             `bson:"username" json:"username" validate:"required"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Skills       []string           `bson:"skills" json:"skills" validate:"required,min=1"`
	Interests    []string           `bson:"interests" json:"interests" validate:"required,min=1"`
	Bio          string             `bson:"bio" json:"bio"`
	Location     string             `bson:"location" json:"location"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

func (u *User) BeforeCreate() error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (u *User) Sanitize() {
	u.Username = helpers.StringTrim(u.Username)
	u.Bio = helpers.StringTrim(u.Bio)
	u.Location = helpers.StringTrim(u.Location)
	u.Skills = helpers.CleanStringList(u.Skills)
	u.Interests = helpers.CleanStringList(u.Interests)
}

// ProfileUpdate is the wholesale replacement payload for PUT /users/:username.
// Fields are never merged with the stored profile.
type ProfileUpdate struct {
	Location  string   `json:"location"`
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

func (p *ProfileUpdate) Sanitize() {
	p.Location = helpers.StringTrim(p.Location)
	p.Bio = helpers.StringTrim(p.Bio)
	p.Skills = helpers.CleanStringList(p.Skills)
	p.Interests = helpers.CleanStringList(p.Interests)
}

func (p ProfileUpdate) Validate() error {
	if len(p.Skills) == 0 {
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", ErrInvalidInput)
	}
	return nil
}

// SkillEntry is one (username, skill) pair in the skill catalogue. Duplicate
// skill names across users are preserved as separate entries.
type SkillEntry struct {
	Username string `json:"username"`
	Skill    string `json:"skill"`
}

// SkillTeacher is the reduced profile returned by the per-skill lookup.
type SkillTeacher struct {
	Username string `bson:"username" json:"username"`
	Bio      string `bson:"bio" json:"bio"`
}

type SkillDetails struct {
	SkillName string         `json:"skillName"`
	Users     []SkillTeacher `json:"users"`
}

// SearchResult bundles the two independent result sets of a free-text search.
// Zero matches is a valid result, never an error.
type SearchResult struct {
	Users  []*User  `json:"users"`
	Skills []string `json:"skills"`
}
