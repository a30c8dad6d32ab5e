package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/stakeway/backoffice/internal/domain/error"
)

// Monetary values are carried as int64 cents everywhere in the domain.
// Parsing and formatting work on the string representation so no float
// ever touches a wallet or commission amount.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmountToCents validates a decimal amount string and converts it to cents.
// "100", "100.5" and "100.50" all parse; more than two decimal places is an error.
func ParseAmountToCents(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// CentsToAmount converts integer cents back to a decimal string with two places.
// 1015 becomes "10.15", 1000 becomes "10.00".
func CentsToAmount(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// CommissionCents applies a basis-point rate to an amount in cents, rounding
// half away from zero. Rounding happens here, at the point of crediting,
// never at display time.
func CommissionCents(amountCents int64, rateBps int64) int64 {
	product := amountCents * rateBps
	half := int64(5000)
	if product < 0 {
		return (product - half) / 10000
	}
	return (product + half) / 10000
}
