package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func card(limit, outstanding string, dueDate time.Time) *CreditCard {
	return &CreditCard{
		Name:              "Test Card",
		CreditLimit:       dec(limit),
		OutstandingAmount: dec(outstanding),
		DueDate:           dueDate,
	}
}

func TestAvailableCreditAndUtilization(t *testing.T) {
	c := card("100000", "25000", time.Now())

	assert.True(t, AvailableCredit(c).Equal(dec("75000")))
	assert.True(t, CreditUtilization(c).Equal(dec("25")))
}

func TestCreditUtilizationZeroLimit(t *testing.T) {
	c := card("0", "500", time.Now())
	assert.True(t, CreditUtilization(c).IsZero())
}

func TestCardDueStatusBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name string
		due  time.Time
		want DueStatus
		days int64
	}{
		{"overdue yesterday", day(9), DueStatusOverdue, -1},
		{"due today", day(10), DueStatusWarning, 0},
		{"due in five days", day(15), DueStatusWarning, 5},
		{"due in six days", day(16), DueStatusOK, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := card("1000", "100", tc.due)
			assert.Equal(t, tc.want, CardDueStatus(c, now))
			assert.Equal(t, tc.days, DaysUntilDue(c, now))
		})
	}
}
