package services

import (
	"context"

	"github.com/joshua-takyi/skillswap/internal/models"
)

type ScheduleService struct {
	schedules models.ScheduleRepo
}

func NewScheduleService(schedules models.ScheduleRepo) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
	}
}

// Create validates the booking window server-side and always stores the
// schedule as pending. A status value in the request body is ignored.
func (ss *ScheduleService) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	schedule.Sanitize()
	if err := schedule.ValidateSchedule(); err != nil {
		return nil, err
	}
	return ss.schedules.CreateSchedule(ctx, schedule)
}

func (ss *ScheduleService) ForUser(ctx context.Context, username string) ([]*models.Schedule, error) {
	return ss.schedules.GetSchedulesByUser(ctx, username)
}
