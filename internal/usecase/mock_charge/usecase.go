package mock_charge

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case тестового списания. Эмулирует платежный шлюз:
// валидирует план и сумму, а привязку платежа к резервации делает
// по принципу best-effort, не считая сбой записи ошибкой списания.
type UseCase struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(paymentRepo PaymentRepository, logger Logger) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Execute выполняет тестовое списание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MockCharge: plan=%q", req.Plan)

	// 1. Нормализация плана до любых обращений к БД
	plan, amount, err := normalizePlan(req.Plan)
	if err != nil {
		uc.logger.Warn("MockCharge: unknown plan %q", req.Plan)
		return nil, err
	}

	// 2. Клиентская сумма, если передана, должна совпадать с суммой плана
	if req.Amount != nil && !req.Amount.Equal(amount) {
		uc.logger.Warn("MockCharge: amount %s does not match plan %s amount %s", req.Amount, plan, amount)
		return nil, fmt.Errorf("%w: expected %s", ErrAmountMismatch, amount)
	}

	resp := &Response{
		OK:     true,
		Plan:   plan,
		Amount: amount,
	}

	// 3. Привязка платежа к резервации выполняется по принципу best-effort:
	// любой сбой записи логируется и не мешает успешному ответу
	if req.ReservationID != nil {
		payment := &domain.Payment{
			ReservationID: *req.ReservationID,
			Method:        domain.PaymentMethodOnlineCard,
			Amount:        amount,
			Status:        domain.PaymentApproved,
		}

		created, err := uc.paymentRepo.Create(ctx, payment)
		if err != nil {
			uc.logger.Warn("MockCharge: failed to persist payment for reservation id=%d: %v", *req.ReservationID, err)
		} else {
			resp.PaymentID = &created.ID
			uc.logger.Info("MockCharge: payment id=%d persisted for reservation id=%d", created.ID, *req.ReservationID)
		}
	}

	return resp, nil
}
