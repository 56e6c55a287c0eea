package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
)

type UserService struct {
	users       models.UserRepo
	tokenSecret []byte
	tokenTTL    time.Duration
}

func NewUserService(users models.UserRepo, tokenSecret []byte, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:       users,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
	}
}

// RegisterRequest is the registration payload. Password is required and only
// its bcrypt hash is ever stored.
type RegisterRequest struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio"`
	Location  string   `json:"location"`
}

func (us *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	user := &models.User{
		Username:  req.Username,
		Skills:    req.Skills,
		Interests: req.Interests,
		Bio:       req.Bio,
		Location:  req.Location,
	}
	user.Sanitize()

	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrInvalidInput)
	}
	if len(user.Skills) == 0 {
		return nil, fmt.Errorf("%w: at least one skill is required", models.ErrInvalidInput)
	}
	if len(user.Interests) == 0 {
		return nil, fmt.Errorf("%w: at least one interest is required", models.ErrInvalidInput)
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := models.Validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return us.users.CreateUser(ctx, user)
}

// Authenticate verifies the password against the stored bcrypt hash and issues
// a session token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (us *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = helpers.StringTrim(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", models.ErrInvalidInput)
	}

	user, err := us.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", models.ErrInvalidCredentials
	}
	if !helpers.CheckPassword(user.PasswordHash, password) {
		return "", models.ErrInvalidCredentials
	}

	token, err := helpers.GenerateToken(user.Username, us.tokenSecret, us.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

// TokenTTL exposes the configured session lifetime for cookie expiry.
func (us *UserService) TokenTTL() time.Duration {
	return us.tokenTTL
}

func (us *UserService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	return us.users.GetUserByUsername(ctx, username)
}

// UpdateProfile replaces the profile fields wholesale.
func (us *UserService) UpdateProfile(ctx context.Context, username string, update models.ProfileUpdate) error {
	update.Sanitize()
	if err := update.Validate(); err != nil {
		return err
	}
	return us.users.UpdateProfile(ctx, username, update)
}

func (us *UserService) ListUsernames(ctx context.Context) ([]string, error) {
	return us.users.ListUsernames(ctx)
}

func (us *UserService) SkillCatalogue(ctx context.Context) ([]models.SkillEntry, error) {
	return us.users.ListSkillPairs(ctx)
}

func (us *UserService) SkillDetails(ctx context.Context, skillName string) (*models.SkillDetails, error) {
	teachers, err := us.users.FindBySkill(ctx, skillName)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, models.ErrNotFound
	}
	return &models.SkillDetails{SkillName: skillName, Users: teachers}, nil
}

// Search matches the query as a case-insensitive substring against usernames
// and skills independently. Zero matches yields empty result sets with no
// error. The query is escaped before it reaches the regex engine.
func (us *UserService) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	query = helpers.StringTrim(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", models.ErrInvalidInput)
	}
	pattern := regexp.QuoteMeta(query)

	users, err := us.users.SearchUsers(ctx, pattern)
	if err != nil {
		return nil, err
	}
	skills, err := us.users.DistinctSkills(ctx, pattern)
	if err != nil {
		return nil, err
	}

	return &models.SearchResult{Users: users, Skills: skills}, nil
}
