package entities

import "github.com/shopspring/decimal"

// Денежные суммы хранятся в NUMERIC(14, 2).
const MoneyScale = 2

var moneyLimit = decimal.New(1, 14-MoneyScale)

// IsValidMoney: сумма положительна, не длиннее двух знаков после запятой
// и помещается в колонку без округления.
func IsValidMoney(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.Equal(amount.Truncate(MoneyScale)) &&
		amount.LessThan(moneyLimit)
}
