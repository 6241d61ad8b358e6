package charge_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
)

// UseCase use case для списания оплаты по резервации.
// Резервация при списании не изменяется: платеж фиксируется отдельной записью.
type UseCase struct {
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	tariff          domain.Tariff
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	tariff domain.Tariff,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		tariff:          tariff,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет списание оплаты по резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChargeReservation: reservation=%d, method=%s", req.ReservationID, req.Method)

	// 1. Валидация входных данных до любых обращений к БД
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChargeReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время берется один раз на весь расчет
	now := uc.timeProvider.Now()

	var result *domain.Payment

	// 3. Чтение резервации и создание платежа в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ChargeReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ChargeReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// Переопределенная сумма используется как есть, без пересчета
		amount := ComputeAmount(reservation, uc.tariff, now)
		if req.Amount != nil {
			amount = req.Amount.Round(domain.MoneyScale)
			uc.logger.Info("ChargeReservation: amount override %s for reservation id=%d", amount, req.ReservationID)
		}

		method := domain.PaymentMethod(req.Method)
		payment := &domain.Payment{
			ReservationID: reservation.ID,
			Method:        method,
			Amount:        amount,
			Status:        domain.StatusForMethod(method),
		}

		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			uc.logger.Error("ChargeReservation: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ChargeReservation: payment id=%d created, amount=%s, status=%s",
		result.ID, result.Amount, result.Status)

	return &Response{
		PaymentID:     result.ID,
		ReservationID: result.ReservationID,
		Method:        string(result.Method),
		Amount:        result.Amount,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
