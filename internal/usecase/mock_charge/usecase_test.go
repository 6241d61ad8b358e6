package mock_charge

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

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
	payment.ID = 42
	payment.CreatedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.created = payment
	return payment, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func TestMockCharge_PlanSpellings(t *testing.T) {
	cases := []struct {
		raw    string
		plan   string
		amount string
	}{
		{"30", "30", "30.00"},
		{"30m", "30", "30.00"},
		{"0.5h", "30", "30.00"},
		{"60", "60", "50.00"},
		{"1h", "60", "50.00"},
		{" 1H ", "60", "50.00"},
	}

	uc := NewUseCase(&paymentRepoStub{}, &nopLogger{})

	for _, tc := range cases {
		resp, err := uc.Execute(context.Background(), &Request{Plan: tc.raw})

		require.NoError(t, err, "plan %q", tc.raw)
		assert.True(t, resp.OK)
		assert.Equal(t, tc.plan, resp.Plan, "plan %q", tc.raw)
		assert.Equal(t, tc.amount, resp.Amount.StringFixed(2), "plan %q", tc.raw)
		assert.Nil(t, resp.PaymentID)
	}
}

func TestMockCharge_UnknownPlanRejectedBeforeIO(t *testing.T) {
	repo := &paymentRepoStub{}
	uc := NewUseCase(repo, &nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Plan:          "90",
		ReservationID: ptr.Ptr(int64(7)),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlan)
	assert.Zero(t, repo.calls)
}

func TestMockCharge_AmountMustMatchPlan(t *testing.T) {
	uc := NewUseCase(&paymentRepoStub{}, &nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Plan:   "60",
		Amount: ptr.Ptr(decimal.RequireFromString("30.00")),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestMockCharge_MatchingAmountAccepted(t *testing.T) {
	uc := NewUseCase(&paymentRepoStub{}, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Plan:   "1h",
		Amount: ptr.Ptr(decimal.RequireFromString("50.00")),
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestMockCharge_PersistsPaymentForReservation(t *testing.T) {
	repo := &paymentRepoStub{}
	uc := NewUseCase(repo, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Plan:          "30",
		ReservationID: ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.PaymentID)
	assert.Equal(t, int64(42), *resp.PaymentID)
	assert.Equal(t, domain.PaymentMethodOnlineCard, repo.created.Method)
	assert.Equal(t, domain.PaymentApproved, repo.created.Status)
	assert.Equal(t, int64(7), repo.created.ReservationID)
}

func TestMockCharge_PersistenceFailureSwallowed(t *testing.T) {
	repo := &paymentRepoStub{err: paymentRepo.ErrForeignKeyViolation}
	uc := NewUseCase(repo, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Plan:          "30",
		ReservationID: ptr.Ptr(int64(999)),
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Nil(t, resp.PaymentID)
	assert.Equal(t, "30.00", resp.Amount.StringFixed(2))
}
