package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type reservationRepoStub struct {
	total   int64
	byDay   map[string]int64
	gotFrom time.Time
	gotTo   time.Time
}

func (s *reservationRepoStub) CountTotal(_ context.Context) (int64, error) {
	return s.total, nil
}

func (s *reservationRepoStub) CountByDay(_ context.Context, from, to time.Time) (map[string]int64, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.byDay, nil
}

type spaceRepoStub struct {
	total    int64
	occupied int64
}

func (s *spaceRepoStub) CountTotal(_ context.Context) (int64, error) {
	return s.total, nil
}

func (s *spaceRepoStub) CountByState(_ context.Context, _ domain.SpaceState) (int64, error) {
	return s.occupied, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func TestSummary_OccupancyPercent(t *testing.T) {
	svc := NewService(
		&reservationRepoStub{total: 12},
		&spaceRepoStub{total: 8, occupied: 3},
		&nopLogger{},
	)

	resp, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalReservations)
	assert.Equal(t, int64(8), resp.TotalSpaces)
	assert.Equal(t, "37.50", resp.OccupancyPct)
}

func TestSummary_EmptySystemDoesNotDivideByZero(t *testing.T) {
	svc := NewService(
		&reservationRepoStub{},
		&spaceRepoStub{},
		&nopLogger{},
	)

	resp, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.OccupancyPct)
}

func TestReservationsLast7Days_ZeroFilled(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	repo := &reservationRepoStub{
		byDay: map[string]int64{
			"2026-03-10": 4,
			"2026-03-07": 1,
		},
	}

	svc := NewService(repo, &spaceRepoStub{}, &nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := svc.ReservationsLast7Days(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "2026-03-04", resp.Days[0].Date)
	assert.Equal(t, "2026-03-10", resp.Days[6].Date)

	assert.Equal(t, int64(0), resp.Days[0].Reservations)
	assert.Equal(t, int64(1), resp.Days[3].Reservations)
	assert.Equal(t, int64(4), resp.Days[6].Reservations)
}

func TestReservationsLast7Days_QueryWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	repo := &reservationRepoStub{byDay: map[string]int64{}}

	svc := NewService(repo, &spaceRepoStub{}, &nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}

	_, err := svc.ReservationsLast7Days(context.Background())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), repo.gotTo)
}
