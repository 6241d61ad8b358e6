package charge_reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ComputeAmount рассчитывает сумму оплаты за резервацию.
//
// Границы интервала: фактическое начало имеет приоритет над плановым,
// фактический конец над плановым, при отсутствии обоих концов берется now.
// Пустой или перевернутый интервал тарифицируется как один час. Иначе
// длительность округляется вниз до целых минут (минимум одна) и вверх до
// целых часов. Итог ограничивается снизу минимальной суммой тарифа и
// округляется до двух знаков.
func ComputeAmount(res *domain.Reservation, tariff domain.Tariff, now time.Time) decimal.Decimal {
	hours := billedHours(res, now)

	amount := tariff.RatePerHour.Mul(decimal.NewFromInt(hours))
	if amount.LessThan(tariff.MinimumCharge) {
		amount = tariff.MinimumCharge
	}

	return amount.Round(domain.MoneyScale)
}

// billedHours вычисляет количество тарифицируемых часов
func billedHours(res *domain.Reservation, now time.Time) int64 {
	start := res.PlannedStart
	if res.ActualStart != nil {
		start = *res.ActualStart
	}

	end := now
	if res.ActualEnd != nil {
		end = *res.ActualEnd
	} else if !res.PlannedEnd.IsZero() {
		end = res.PlannedEnd
	}

	if start.IsZero() || !end.After(start) {
		return domain.FallbackBilledHours
	}

	minutes := int64(end.Sub(start).Minutes())
	if minutes < domain.MinBilledMinutes {
		minutes = domain.MinBilledMinutes
	}

	// Округление вверх до целых часов
	return (minutes + 59) / 60
}
