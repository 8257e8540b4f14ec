package pgrepo

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/pkg/uow"
)

type StatsRepository struct {
	conn uow.DBTX
}

func NewStatsRepository(conn uow.DBTX) *StatsRepository {
	return &StatsRepository{conn: conn}
}

func (s *StatsRepository) Totals(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := s.conn.QueryRow(ctx,
		`SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM orders),
			(SELECT COALESCE(sum(amount), 0) FROM orders),
			(SELECT count(*) FROM deposits WHERE status = $1)`,
		string(domain.DepositStatusPending),
	).Scan(&stats.Users, &stats.Orders, &stats.Revenue, &stats.PendingDeposits); err != nil {
		return nil, convertErr(err, "getting totals")
	}
	return &stats, nil
}

// Daily статистика по дням за последние days дней, включая сегодняшний, от старых к новым.
func (s *StatsRepository) Daily(ctx context.Context, days uint) ([]domain.DailyStats, error) {
	safeDays, daysErr := safeConvertUintToInt32(days)
	if daysErr != nil {
		return nil, convertErr(daysErr, "converting days to int32")
	}
	rows, err := s.conn.Query(ctx,
		`SELECT
			d.day::timestamptz,
			(SELECT count(*) FROM orders o WHERE o.created_at::date = d.day),
			(SELECT COALESCE(sum(o.amount), 0) FROM orders o WHERE o.created_at::date = d.day),
			(SELECT count(*) FROM deposits dp WHERE dp.updated_at::date = d.day AND dp.status = $2),
			(SELECT count(*) FROM users u WHERE u.created_at::date = d.day)
		FROM generate_series(current_date - ($1::int - 1), current_date, interval '1 day') AS d(day)
		ORDER BY d.day`,
		safeDays, string(domain.DepositStatusApproved),
	)
	if err != nil {
		return nil, convertErr(err, "getting daily stats")
	}
	daily, collectErr := collectRows(rows, func(row rowScanner) (*domain.DailyStats, error) {
		var day domain.DailyStats
		if scanErr := row.Scan(&day.Day, &day.Orders, &day.Revenue, &day.Deposits, &day.Users); scanErr != nil {
			return nil, scanErr //nolint:wrapcheck
		}
		return &day, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning daily stats")
	}
	return daily, nil
}
