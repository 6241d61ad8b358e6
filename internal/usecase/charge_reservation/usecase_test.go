package charge_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type reservationRepoStub struct {
	reservation *domain.Reservation
	err         error
	calls       int
}

func (s *reservationRepoStub) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.reservation, nil
}

type paymentRepoStub struct {
	created *domain.Payment
	err     error
	calls   int
}

func (s *paymentRepoStub) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	payment.ID = 101
	payment.CreatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.created = payment
	return payment, nil
}

type txManagerStub struct{}

func (s *txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newChargeUseCase(resRepo *reservationRepoStub, payRepo *paymentRepoStub, tariff domain.Tariff) *UseCase {
	uc := NewUseCase(resRepo, payRepo, &txManagerStub{}, tariff, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func openReservation() *domain.Reservation {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:           7,
		UserID:       1,
		FacilityID:   1,
		PlannedStart: start,
		PlannedEnd:   start.Add(61 * time.Minute),
		Status:       domain.ReservationActive,
	}
}

func TestChargeReservation_CashIsApprovedImmediately(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 7, Method: "cash"})

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.PaymentID)
	assert.Equal(t, int64(7), resp.ReservationID)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "20.00", resp.Amount.StringFixed(2))
}

func TestChargeReservation_OnlineCardStartsPending(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 7, Method: "online_card"})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestChargeReservation_AmountOverrideUsedVerbatim(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	override := decimal.RequireFromString("5.55")
	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 7,
		Method:        "card",
		Amount:        ptr.Ptr(override),
	})

	require.NoError(t, err)
	assert.Equal(t, "5.55", resp.Amount.StringFixed(2))
}

func TestChargeReservation_InvalidMethodRejectedBeforeIO(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 7, Method: "bitcoin"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMethod)
	assert.Zero(t, resRepo.calls)
	assert.Zero(t, payRepo.calls)
}

func TestChargeReservation_ReservationNotFound(t *testing.T) {
	resRepo := &reservationRepoStub{err: reservationRepo.ErrReservationNotFound}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 999, Method: "cash"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Zero(t, payRepo.calls)
}

func TestChargeReservation_PersistenceFailurePropagates(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{err: errors.New("connection reset")}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 7, Method: "cash"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestChargeReservation_SinglePaymentPerCharge(t *testing.T) {
	resRepo := &reservationRepoStub{reservation: openReservation()}
	payRepo := &paymentRepoStub{}

	uc := newChargeUseCase(resRepo, payRepo, tariff("10.00", "0.00"))

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 7, Method: "card"})

	require.NoError(t, err)
	assert.Equal(t, 1, payRepo.calls)
}
