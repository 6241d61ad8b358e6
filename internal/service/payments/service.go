package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ParkingService/internal/service/payments/models"
)

// Service сервис для чтения и удаления платежей.
// Создание платежей выполняется только через usecase'ы списания.
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает платеж по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PaymentResponse, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetPayment: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetPayment: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}

// List получает список платежей с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListPaymentsRequest) (*models.PaymentListResponse, error) {
	filter := domain.PaymentsFilter{
		ReservationID: req.ReservationID,
	}

	if req.Status != nil {
		status := domain.PaymentStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListPayments: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// Delete удаляет платеж
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeletePayment: payment id=%d", id)

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("DeletePayment: payment id=%d not found", id)
			return ErrPaymentNotFound
		}
		s.logger.Error("DeletePayment: repository error for payment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePayment: successfully deleted payment id=%d", id)
	return nil
}
