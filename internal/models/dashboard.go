package models

// DashboardData is the aggregate payload for a user's dashboard. It is
// computed fresh on every call; nothing here is cached.
type DashboardData struct {
	MySkills          []string    `json:"mySkills"`
	MyInterests       []string    `json:"myInterests"`
	UpcomingSchedules []*Schedule `json:"upcomingSchedules"`
	RecentMessages    []*Message  `json:"recentMessages"`
	RecommendedSkills []string    `json:"recommendedSkills"`
}
