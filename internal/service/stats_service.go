package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

// ChartDays глубина графика в админке.
const ChartDays uint = 7

type StatsService struct {
	statsRepo StatsRepository
}

func NewStatsService(u uow.UOW) (*StatsService, error) {
	statsRepo, err := poolRepo[StatsRepository](u, repoargs.StatsRepoName)
	if err != nil {
		return nil, err
	}
	return &StatsService{statsRepo: statsRepo}, nil
}

func (s *StatsService) Totals(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.statsRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting stats: %w", err)
	}
	return stats, nil
}

// Chart дневная статистика за последние ChartDays дней.
func (s *StatsService) Chart(ctx context.Context) ([]domain.DailyStats, error) {
	daily, err := s.statsRepo.Daily(ctx, ChartDays)
	if err != nil {
		return nil, fmt.Errorf("getting chart: %w", err)
	}
	return daily, nil
}
