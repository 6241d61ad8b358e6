package mock_charge

import "github.com/shopspring/decimal"

// Request модель запроса на тестовое списание
type Request struct {
	Plan          string           // План в любом из принимаемых написаний: "30", "30m", "0.5h", "60", "1h"
	Amount        *decimal.Decimal // Клиентская сумма для сверки с планом (опционально)
	ReservationID *int64           // Резервация для привязки платежа (опционально)
}

// Response модель ответа тестового списания
type Response struct {
	OK        bool            // Всегда true при успешном ответе
	Plan      string          // Канонический план: "30" или "60"
	Amount    decimal.Decimal // Сумма плана, 2 знака после запятой
	PaymentID *int64          // ID платежа, nil если платеж не привязан или не сохранился
}
