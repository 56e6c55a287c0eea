package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/handlers"
	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/middleware"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// fakeRepo is an in-memory stand-in for MongodbRepo with the same observable
// semantics: unique usernames, direction-symmetric conversations, sorted
// results.
type fakeRepo struct {
	mu        sync.Mutex
	users     []*models.User
	messages  []*models.Message
	schedules []*models.Schedule
	reviews   []*models.Review
}

func (f *fakeRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return nil, models.ErrDuplicateUsername
		}
	}
	if err := user.BeforeCreate(); err != nil {
		return nil, err
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) UpdateProfile(ctx context.Context, username string, update models.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			u.Location = update.Location
			u.Bio = update.Bio
			u.Skills = update.Skills
			u.Interests = update.Interests
			u.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeRepo) ListUsernames(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := []string{}
	for _, u := range f.users {
		names = append(names, u.Username)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeRepo) ListSkillPairs(ctx context.Context) ([]models.SkillEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pairs := []models.SkillEntry{}
	for _, u := range f.users {
		for _, s := range u.Skills {
			if s != "" {
				pairs = append(pairs, models.SkillEntry{Username: u.Username, Skill: s})
			}
		}
	}
	return pairs, nil
}

func (f *fakeRepo) FindBySkill(ctx context.Context, skillName string) ([]models.SkillTeacher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	teachers := []models.SkillTeacher{}
	for _, u := range f.users {
		for _, s := range u.Skills {
			if s == skillName {
				teachers = append(teachers, models.SkillTeacher{Username: u.Username, Bio: u.Bio})
				break
			}
		}
	}
	return teachers, nil
}

func (f *fakeRepo) SearchUsers(ctx context.Context, pattern string) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(pattern)
	result := []*models.User{}
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username), needle) {
			result = append(result, u)
		}
	}
	return result, nil
}

func (f *fakeRepo) DistinctSkills(ctx context.Context, pattern string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(pattern)
	seen := map[string]struct{}{}
	skills := []string{}
	for _, u := range f.users {
		for _, s := range u.Skills {
			if !strings.Contains(strings.ToLower(s), needle) {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	return skills, nil
}

func (f *fakeRepo) FindUsersOfferingAny(ctx context.Context, excludeUsername string, skills []string) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := map[string]struct{}{}
	for _, s := range skills {
		wanted[s] = struct{}{}
	}
	result := []*models.User{}
	for _, u := range f.users {
		if u.Username == excludeUsername {
			continue
		}
		for _, s := range u.Skills {
			if _, ok := wanted[s]; ok {
				result = append(result, u)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeRepo) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := message.BeforeCreate(); err != nil {
		return nil, err
	}
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeRepo) GetConversation(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Message{}
	for _, m := range f.messages {
		if (m.Sender == userA && m.Recipient == userB) || (m.Sender == userB && m.Recipient == userA) {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

func (f *fakeRepo) RecentMessages(ctx context.Context, username string, limit int64) ([]*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Message{}
	for _, m := range f.messages {
		if m.Sender == username || m.Recipient == username {
			result = append(result, m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := schedule.BeforeCreate(); err != nil {
		return nil, err
	}
	f.schedules = append(f.schedules, schedule)
	return schedule, nil
}

func (f *fakeRepo) GetSchedulesByUser(ctx context.Context, username string) ([]*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Schedule{}
	for _, s := range f.schedules {
		if s.Teacher == username || s.Learner == username {
			result = append(result, s)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (f *fakeRepo) UpcomingSchedules(ctx context.Context, username string, after time.Time, limit int64) ([]*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Schedule{}
	for _, s := range f.schedules {
		if s.Teacher != username && s.Learner != username {
			continue
		}
		if s.StartTime.Before(after) {
			continue
		}
		if s.Status != models.ScheduleStatusPending && s.Status != models.ScheduleStatusConfirmed {
			continue
		}
		result = append(result, s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := review.BeforeCreate(); err != nil {
		return nil, err
	}
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeRepo) GetReviewsForUser(ctx context.Context, reviewedUser string) ([]*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*models.Review{}
	for _, r := range f.reviews {
		if r.ReviewedUser == reviewedUser {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

func newTestRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userService := services.NewUserService(repo, testSecret, time.Hour)
	messageService := services.NewMessageService(repo)
	scheduleService := services.NewScheduleService(repo)
	reviewService := services.NewReviewService(repo)
	dashboardService := services.NewDashboardService(repo, repo, repo)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/register", handlers.Register(userService))
		v1.POST("/login", handlers.Login(userService))
		v1.POST("/logout", handlers.Logout())
		v1.GET("/users", handlers.ListUsers(userService))
		v1.GET("/users/:username", handlers.GetProfile(userService))
		v1.GET("/skills", handlers.SkillCatalogue(userService))
		v1.GET("/skills/:skillName", handlers.SkillDetails(userService))
		v1.GET("/search", handlers.Search(userService))
		v1.GET("/reviews/:reviewedUser", handlers.GetReviews(reviewService))
	}
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired(testSecret))
	{
		protected.PUT("/users/:username", handlers.UpdateProfile(userService))
		protected.POST("/messages", handlers.SendMessage(messageService))
		protected.GET("/messages/:userA/:userB", handlers.GetConversation(messageService))
		protected.POST("/schedules", handlers.CreateSchedule(scheduleService))
		protected.GET("/schedules/:username", handlers.GetSchedules(scheduleService))
		protected.POST("/reviews", handlers.CreateReview(reviewService))
		protected.GET("/dashboard-data/:username", handlers.DashboardData(dashboardService))
	}
	return r
}

func doRequest(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string, skills, interests []string) {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/v1/register", gin.H{
		"username":  username,
		"password":  "Str0ng!pass",
		"skills":    skills,
		"interests": interests,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/v1/login", gin.H{
		"username": username,
		"password": "Str0ng!pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	registerUser(t, r, "alice", []string{"Go"}, []string{"Rust"})

	w := doRequest(r, http.MethodPost, "/api/v1/register", gin.H{
		"username":  "alice",
		"password":  "different",
		"skills":    []string{"Cooking"},
		"interests": []string{"Chess"},
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	cases := []gin.H{
		{"username": "bob", "password": "x", "skills": []string{}, "interests": []string{"a"}},
		{"username": "bob", "password": "x", "skills": []string{"a"}, "interests": []string{}},
		{"username": "", "password": "x", "skills": []string{"a"}, "interests": []string{"a"}},
		{"username": "bob", "password": "", "skills": []string{"a"}, "interests": []string{"a"}},
	}
	for i, body := range cases {
		w := doRequest(r, http.MethodPost, "/api/v1/register", body, "")
		assert.Equalf(t, http.StatusBadRequest, w.Code, "case %d: %s", i, w.Body.String())
	}
}

func TestLoginUnknownUserUnauthorized(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := doRequest(r, http.MethodPost, "/api/v1/login", gin.H{
		"username": "ghost",
		"password": "whatever",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"Rust"})

	w := doRequest(r, http.MethodPost, "/api/v1/login", gin.H{
		"username": "alice",
		"password": "not-the-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileExcludesPassword(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"Rust"})

	w := doRequest(r, http.MethodGet, "/api/v1/users/alice", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile["username"])
	assert.NotContains(t, profile, "password")
	assert.NotContains(t, profile, "password_hash")
}

func TestProfileNotFound(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := doRequest(r, http.MethodGet, "/api/v1/users/nobody", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfileRequiresOwnership(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"Rust"})
	registerUser(t, r, "bob", []string{"Chess"}, []string{"Go"})
	bobToken := login(t, r, "bob")

	update := gin.H{"location": "Berlin", "bio": "hi", "skills": []string{"Chess"}, "interests": []string{"Go"}}

	w := doRequest(r, http.MethodPut, "/api/v1/users/alice", update, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodPut, "/api/v1/users/alice", update, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileReplacesWholesale(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go", "Cooking"}, []string{"Rust"})
	token := login(t, r, "alice")

	w := doRequest(r, http.MethodPut, "/api/v1/users/alice", gin.H{
		"location":  "Berlin",
		"bio":       "teacher",
		"skills":    []string{"Sketching"},
		"interests": []string{"Chess"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/v1/users/alice", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, []string{"Sketching"}, profile.Skills)
	assert.Equal(t, []string{"Chess"}, profile.Interests)
	assert.Equal(t, "Berlin", profile.Location)
}

func TestListUsersSorted(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "carol", []string{"x"}, []string{"y"})
	registerUser(t, r, "alice", []string{"x"}, []string{"y"})
	registerUser(t, r, "bob", []string{"x"}, []string{"y"})

	w := doRequest(r, http.MethodGet, "/api/v1/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestSkillCataloguePreservesDuplicatesAcrossUsers(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"y"})
	registerUser(t, r, "bob", []string{"Go"}, []string{"y"})

	w := doRequest(r, http.MethodGet, "/api/v1/skills", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var pairs []models.SkillEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pairs))
	assert.Len(t, pairs, 2)
}

func TestSkillDetails(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"y"})

	w := doRequest(r, http.MethodGet, "/api/v1/skills/Go", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var details models.SkillDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, "Go", details.SkillName)
	require.Len(t, details.Users, 1)
	assert.Equal(t, "alice", details.Users[0].Username)

	// exact, case-sensitive match only
	w = doRequest(r, http.MethodGet, "/api/v1/skills/go", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"Go"}, []string{"y"})

	w := doRequest(r, http.MethodGet, "/api/v1/search?query=zzzz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var result models.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Users)
	assert.Empty(t, result.Skills)
	assert.NotNil(t, result.Users)
	assert.NotNil(t, result.Skills)
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "Alice", []string{"Woodworking"}, []string{"y"})

	w := doRequest(r, http.MethodGet, "/api/v1/search?query=lic", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var result models.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Users, 1)
	assert.Equal(t, "Alice", result.Users[0].Username)

	w = doRequest(r, http.MethodGet, "/api/v1/search?query=WOOD", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"Woodworking"}, result.Skills)
}

func TestSearchMissingQuery(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := doRequest(r, http.MethodGet, "/api/v1/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageRoundTrip(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "a", []string{"x"}, []string{"y"})
	registerUser(t, r, "b", []string{"x"}, []string{"y"})
	tokenA := login(t, r, "a")

	w := doRequest(r, http.MethodPost, "/api/v1/messages", gin.H{
		"sender": "a", "recipient": "b", "content": "hi",
	}, tokenA)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/v1/messages/a/b", nil, tokenA)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
	assert.Equal(t, "a", messages[0].Sender)
	assert.False(t, messages[0].Timestamp.IsZero())
}

func TestConversationIsDirectionSymmetricAndOrdered(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "a", []string{"x"}, []string{"y"})
	registerUser(t, r, "b", []string{"x"}, []string{"y"})
	tokenA := login(t, r, "a")
	tokenB := login(t, r, "b")

	for i, m := range []struct {
		from, to, token, content string
	}{
		{"a", "b", tokenA, "first"},
		{"b", "a", tokenB, "second"},
		{"a", "b", tokenA, "third"},
	} {
		w := doRequest(r, http.MethodPost, "/api/v1/messages", gin.H{
			"sender": m.from, "recipient": m.to, "content": m.content,
		}, m.token)
		require.Equalf(t, http.StatusCreated, w.Code, "message %d: %s", i, w.Body.String())
	}

	w := doRequest(r, http.MethodGet, "/api/v1/messages/a/b", nil, tokenA)
	require.Equal(t, http.StatusOK, w.Code)
	var forward []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forward))
	require.Len(t, forward, 3)
	assert.Equal(t, "first", forward[0].Content)
	assert.Equal(t, "second", forward[1].Content)
	assert.Equal(t, "third", forward[2].Content)

	w = doRequest(r, http.MethodGet, "/api/v1/messages/b/a", nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	var reverse []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reverse))
	require.Len(t, reverse, 3)
	for i := range forward {
		assert.Equal(t, forward[i].Content, reverse[i].Content)
	}
}

func TestSendMessageRequiresMatchingSender(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "a", []string{"x"}, []string{"y"})
	registerUser(t, r, "b", []string{"x"}, []string{"y"})
	tokenB := login(t, r, "b")

	w := doRequest(r, http.MethodPost, "/api/v1/messages", gin.H{
		"sender": "a", "recipient": "b", "content": "spoofed",
	}, tokenB)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessageRequiresAuth(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := doRequest(r, http.MethodPost, "/api/v1/messages", gin.H{
		"sender": "a", "recipient": "b", "content": "hi",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateScheduleIgnoresSuppliedStatus(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "teacher", []string{"Go"}, []string{"y"})
	registerUser(t, r, "learner", []string{"x"}, []string{"Go"})
	token := login(t, r, "teacher")

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(25 * time.Hour).UTC().Format(time.RFC3339)

	w := doRequest(r, http.MethodPost, "/api/v1/schedules", gin.H{
		"skill":     "Go",
		"teacher":   "teacher",
		"learner":   "learner",
		"startTime": start,
		"endTime":   end,
		"status":    "confirmed",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Schedule models.Schedule `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ScheduleStatusPending, resp.Schedule.Status)
}

func TestCreateScheduleGuards(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "teacher", []string{"Go"}, []string{"y"})
	registerUser(t, r, "learner", []string{"x"}, []string{"Go"})
	token := login(t, r, "teacher")

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(25 * time.Hour).UTC().Format(time.RFC3339)

	// start after end
	w := doRequest(r, http.MethodPost, "/api/v1/schedules", gin.H{
		"skill": "Go", "teacher": "teacher", "learner": "learner",
		"startTime": end, "endTime": start,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// teacher equals learner
	w = doRequest(r, http.MethodPost, "/api/v1/schedules", gin.H{
		"skill": "Go", "teacher": "teacher", "learner": "teacher",
		"startTime": start, "endTime": end,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// caller is neither teacher nor learner
	w = doRequest(r, http.MethodPost, "/api/v1/schedules", gin.H{
		"skill": "Go", "teacher": "learner", "learner": "someone",
		"startTime": start, "endTime": end,
	}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSchedulesAscendingByStart(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "teacher", []string{"Go"}, []string{"y"})
	registerUser(t, r, "learner", []string{"x"}, []string{"Go"})
	token := login(t, r, "teacher")

	later := time.Now().Add(48 * time.Hour).UTC()
	sooner := time.Now().Add(24 * time.Hour).UTC()

	for _, start := range []time.Time{later, sooner} {
		w := doRequest(r, http.MethodPost, "/api/v1/schedules", gin.H{
			"skill": "Go", "teacher": "teacher", "learner": "learner",
			"startTime": start.Format(time.RFC3339),
			"endTime":   start.Add(time.Hour).Format(time.RFC3339),
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doRequest(r, http.MethodGet, "/api/v1/schedules/teacher", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var schedules []models.Schedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedules))
	require.Len(t, schedules, 2)
	assert.True(t, schedules[0].StartTime.Before(schedules[1].StartTime))
}

func TestReviewRatingBounds(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"x"}, []string{"y"})
	registerUser(t, r, "bob", []string{"x"}, []string{"y"})
	token := login(t, r, "alice")

	w := doRequest(r, http.MethodPost, "/api/v1/reviews", gin.H{
		"reviewer": "alice", "reviewedUser": "bob", "rating": 6, "comment": "too good",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the rejected review must not be persisted
	w = doRequest(r, http.MethodGet, "/api/v1/reviews/bob", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Empty(t, reviews)

	for rating := 1; rating <= 5; rating++ {
		w := doRequest(r, http.MethodPost, "/api/v1/reviews", gin.H{
			"reviewer": "alice", "reviewedUser": "bob", "rating": rating, "comment": "ok",
		}, token)
		require.Equalf(t, http.StatusCreated, w.Code, "rating %d: %s", rating, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/reviews/bob", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 5)
	// newest first: the last submitted rating (5) comes back first
	assert.Equal(t, 5, reviews[0].Rating)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].Timestamp.After(reviews[i-1].Timestamp))
	}
}

func TestReviewRequiresMatchingReviewer(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"x"}, []string{"y"})
	registerUser(t, r, "bob", []string{"x"}, []string{"y"})
	bobToken := login(t, r, "bob")

	w := doRequest(r, http.MethodPost, "/api/v1/reviews", gin.H{
		"reviewer": "alice", "reviewedUser": "bob", "rating": 5, "comment": "forged",
	}, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardRecommendations(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "me", []string{"Juggling"}, []string{"X", "Y"})
	registerUser(t, r, "teacher1", []string{"X", "Unrelated"}, []string{"z"})
	registerUser(t, r, "teacher2", []string{"Y"}, []string{"z"})
	token := login(t, r, "me")

	w := doRequest(r, http.MethodGet, "/api/v1/dashboard-data/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data models.DashboardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))

	assert.Equal(t, []string{"Juggling"}, data.MySkills)
	assert.Equal(t, []string{"X", "Y"}, data.MyInterests)
	assert.ElementsMatch(t, []string{"X", "Y"}, data.RecommendedSkills)
	assert.NotContains(t, data.RecommendedSkills, "Unrelated")
	assert.NotContains(t, data.RecommendedSkills, "Juggling")
}

func TestDashboardRecommendationCap(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	interests := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"}
	w := doRequest(r, http.MethodPost, "/api/v1/register", gin.H{
		"username": "me", "password": "Str0ng!pass",
		"skills": []string{"own"}, "interests": interests,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	registerUser(t, r, "polymath", interests, []string{"z"})
	token := login(t, r, "me")

	w = doRequest(r, http.MethodGet, "/api/v1/dashboard-data/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var data models.DashboardData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Len(t, data.RecommendedSkills, 5)
}

func TestDashboardRequiresOwnership(t *testing.T) {
	r := newTestRouter(&fakeRepo{})
	registerUser(t, r, "alice", []string{"x"}, []string{"y"})
	registerUser(t, r, "bob", []string{"x"}, []string{"y"})
	bobToken := login(t, r, "bob")

	w := doRequest(r, http.MethodGet, "/api/v1/dashboard-data/alice", nil, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardUnknownUser(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	// valid session for a user with no stored record
	token, err := helpers.GenerateToken("ghost", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/dashboard-data/ghost", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
