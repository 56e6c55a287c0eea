package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/skillswap/internal/models"
)

const (
	upcomingScheduleLimit  = 5
	recentMessageLimit     = 10
	recommendedSkillsLimit = 5
)

type DashboardService struct {
	users     models.UserRepo
	messages  models.MessageRepo
	schedules models.ScheduleRepo
}

func NewDashboardService(users models.UserRepo, messages models.MessageRepo, schedules models.ScheduleRepo) *DashboardService {
	return &DashboardService{
		users:     users,
		messages:  messages,
		schedules: schedules,
	}
}

// Load assembles the dashboard for a user: own skills and interests, the next
// pending or confirmed sessions, the most recent messages, and skill
// recommendations. Returns models.ErrNotFound when the user does not exist.
func (ds *DashboardService) Load(ctx context.Context, username string) (*models.DashboardData, error) {
	user, err := ds.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	upcoming, err := ds.schedules.UpcomingSchedules(ctx, username, time.Now().UTC(), upcomingScheduleLimit)
	if err != nil {
		return nil, err
	}

	recent, err := ds.messages.RecentMessages(ctx, username, recentMessageLimit)
	if err != nil {
		return nil, err
	}

	recommended := []string{}
	if len(user.Interests) > 0 {
		others, err := ds.users.FindUsersOfferingAny(ctx, username, user.Interests)
		if err != nil {
			return nil, err
		}
		recommended = recommendSkills(others, user.Interests, recommendedSkillsLimit)
	}

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}

	return &models.DashboardData{
		MySkills:          skills,
		MyInterests:       interests,
		UpcomingSchedules: upcoming,
		RecentMessages:    recent,
		RecommendedSkills: recommended,
	}, nil
}

// recommendSkills returns the deduplicated skills taught by other users that
// intersect the caller's interests, capped at limit. Membership is the only
// signal; order follows the storage order of the candidate users.
func recommendSkills(others []*models.User, interests []string, limit int) []string {
	wanted := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		wanted[interest] = struct{}{}
	}

	seen := make(map[string]struct{})
	recommended := []string{}
	for _, other := range others {
		for _, skill := range other.Skills {
			if _, ok := wanted[skill]; !ok {
				continue
			}
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			recommended = append(recommended, skill)
			if len(recommended) >= limit {
				return recommended
			}
		}
	}
	return recommended
}
