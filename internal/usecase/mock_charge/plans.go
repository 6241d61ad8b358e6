package mock_charge

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Канонические планы тестового списания
const (
	PlanHalfHour = "30"
	PlanFullHour = "60"
)

var planAmounts = map[string]decimal.Decimal{
	PlanHalfHour: decimal.RequireFromString("30.00"),
	PlanFullHour: decimal.RequireFromString("50.00"),
}

// planAliases отображает принимаемые написания плана в канонический вид
var planAliases = map[string]string{
	"30":   PlanHalfHour,
	"30m":  PlanHalfHour,
	"0.5h": PlanHalfHour,
	"60":   PlanFullHour,
	"1h":   PlanFullHour,
}

// normalizePlan приводит план к каноническому виду и возвращает его сумму
func normalizePlan(raw string) (string, decimal.Decimal, error) {
	plan, ok := planAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", decimal.Decimal{}, ErrUnknownPlan
	}
	return plan, planAmounts[plan], nil
}
