package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/stakeway/backoffice/internal/domain/error"
)

func TestParseAmountToCents(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100", 10000},
			{"100.5", 10050},
			{"100.50", 10050},
			{"0.01", 1},
			{"0.10", 10},
			{"1.5", 150},
			{"1234567.89", 123456789},
			{"0", 0},
			{"0.00", 0},
			{"  25.00  ", 2500},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmountToCents(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmountToCents(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Edge cases", func(t *testing.T) {
		// Very large valid number
		cents, err := ParseAmountToCents("9999999999.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(999999999999), cents)

		// Trailing decimal point
		cents, err = ParseAmountToCents("10.")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), cents)
	})
}

func TestCentsToAmount(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"Typical amount", 1015, "10.15"},
		{"Whole amount", 1000, "10.00"},
		{"Zero", 0, "0.00"},
		{"Single cent", 1, "0.01"},
		{"Ten cents", 10, "0.10"},
		{"Large amount", 123456789, "1234567.89"},
		{"Negative amount", -1015, "-10.15"},
		{"Negative cent", -1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToAmount(tc.cents))
		})
	}
}

func TestCommissionCents(t *testing.T) {
	testCases := []struct {
		name        string
		amountCents int64
		rateBps     int64
		expected    int64
	}{
		{"7 percent of 1000.00", 100000, 700, 7000},
		{"3 percent of 1000.00", 100000, 300, 3000},
		{"2 percent of 1000.00", 100000, 200, 2000},
		{"1 percent of 1000.00", 100000, 100, 1000},
		{"Rounds half up", 75, 700, 5},    // 5.25 -> 5
		{"Rounds half away", 107, 700, 7}, // 7.49 -> 7
		{"Exact half rounds up", 50, 100, 1},
		{"Zero amount", 0, 700, 0},
		{"Negative amount rounds away from zero", -50, 100, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CommissionCents(tc.amountCents, tc.rateBps))
		})
	}
}
