package charge_reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на списание оплаты по резервации
type Request struct {
	ReservationID int64            // ID резервации
	Method        string           // Метод оплаты: cash, card, online_card
	Amount        *decimal.Decimal // Переопределение суммы (опционально, используется как есть)
}

// Response модель ответа с созданным платежом
type Response struct {
	PaymentID     int64           // ID созданного платежа
	ReservationID int64           // ID резервации
	Method        string          // Метод оплаты
	Amount        decimal.Decimal // Итоговая сумма, 2 знака после запятой
	Status        string          // Статус платежа
	CreatedAt     time.Time       // Время создания
}
