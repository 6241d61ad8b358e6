package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/stats/models"
)

// seriesDays длина ряда для дашборда
const seriesDays = 7

// Service сервис статистики для дашборда
type Service struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(reservationRepo ReservationRepository, spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Summary возвращает сводную статистику: всего резерваций, всего мест
// и процент занятых мест
func (s *Service) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	totalReservations, err := s.reservationRepo.CountTotal(ctx)
	if err != nil {
		s.logger.Error("StatsSummary: failed to count reservations: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	totalSpaces, err := s.spaceRepo.CountTotal(ctx)
	if err != nil {
		s.logger.Error("StatsSummary: failed to count spaces: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	occupied, err := s.spaceRepo.CountByState(ctx, domain.SpaceStateOccupied)
	if err != nil {
		s.logger.Error("StatsSummary: failed to count occupied spaces: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	return &models.SummaryResponse{
		TotalReservations: totalReservations,
		TotalSpaces:       totalSpaces,
		OccupancyPct:      occupancyPct(occupied, totalSpaces),
	}, nil
}

// ReservationsLast7Days возвращает количество резерваций по дням за последние
// 7 дней включая сегодня. Дни без резерваций присутствуют с нулем.
func (s *Service) ReservationsLast7Days(ctx context.Context) (*models.SeriesResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(seriesDays - 1))

	counts, err := s.reservationRepo.CountByDay(ctx, from, today.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("StatsSeries: failed to count reservations by day: %v", err)
		return nil, fmt.Errorf("%w: ReservationsLast7Days - repository error: %v", ErrInternal, err)
	}

	days := make([]models.DayCount, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		date := from.AddDate(0, 0, i).Format(domain.DateFormat)
		days = append(days, models.DayCount{
			Date:         date,
			Reservations: counts[date],
		})
	}

	return &models.SeriesResponse{Days: days}, nil
}

// occupancyPct считает occupied/total*100 с двумя знаками.
// Деление на max(1, total) защищает от пустой системы.
func occupancyPct(occupied, total int64) string {
	divisor := total
	if divisor < 1 {
		divisor = 1
	}

	pct := decimal.NewFromInt(occupied).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(divisor))

	return pct.StringFixed(domain.MoneyScale)
}
