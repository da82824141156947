package services

import (
	"context"
	"net/http"
	"testing"

	"server/src/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) mustCard(t *testing.T, portfolioID int64, name, limit, outstanding, dueDate string) *schemas.CreditCardResponse {
	t.Helper()
	resp, err := e.cards.AddCreditCard(context.Background(), &schemas.CreditCardRequest{
		PortfolioID:       portfolioID,
		CardName:          name,
		CreditLimit:       decPtr(limit),
		OutstandingAmount: decPtr(outstanding),
		DueDate:           dueDate,
	})
	require.NoError(t, err)
	return resp
}

func TestAddCreditCardValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")

	_, err := env.cards.AddCreditCard(ctx, &schemas.CreditCardRequest{
		PortfolioID: 999, CardName: "Visa", CreditLimit: decPtr("1000"),
		OutstandingAmount: decPtr("0"), DueDate: "2026-04-01",
	})
	requireHTTPStatus(t, err, http.StatusNotFound)

	_, err = env.cards.AddCreditCard(ctx, &schemas.CreditCardRequest{
		PortfolioID: portfolioID, CardName: "Visa", CreditLimit: decPtr("-1"),
		OutstandingAmount: decPtr("0"), DueDate: "2026-04-01",
	})
	requireHTTPStatus(t, err, http.StatusBadRequest)

	_, err = env.cards.AddCreditCard(ctx, &schemas.CreditCardRequest{
		PortfolioID: portfolioID, CardName: "Visa", CreditLimit: decPtr("1000"),
		OutstandingAmount: decPtr("0"), DueDate: "01/04/2026",
	})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreditCardResponseFigures(t *testing.T) {
	// clock is pinned to 2026-03-10
	env := newTestEnv()
	portfolioID := env.mustPortfolio(t, "Main")

	card := env.mustCard(t, portfolioID, "Visa", "100000", "25000", "2026-03-13")

	assert.True(t, card.AvailableCredit.Equal(dec("75000")))
	assert.True(t, card.CreditUtilization.Equal(dec("25")))
	assert.Equal(t, int64(3), card.DaysUntilDue)
	assert.Equal(t, "WARNING", card.DueStatus)
	assert.Contains(t, card.AlertMessage, "due in 3 day(s)")
}

func TestUpcomingDueAndOverdueCards(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")

	env.mustCard(t, portfolioID, "Overdue Card", "1000", "100", "2026-03-08")
	env.mustCard(t, portfolioID, "Due Soon", "1000", "100", "2026-03-14")
	env.mustCard(t, portfolioID, "Far Out", "1000", "100", "2026-04-20")

	upcoming, err := env.cards.GetUpcomingDueCards(ctx, portfolioID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Due Soon", upcoming[0].CardName)

	overdue, err := env.cards.GetOverdueCards(ctx, portfolioID)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Overdue Card", overdue[0].CardName)
	assert.Equal(t, "OVERDUE", overdue[0].DueStatus)
	assert.Equal(t, int64(-2), overdue[0].DaysUntilDue)
}

func TestUpdateCreditCardPartial(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	card := env.mustCard(t, portfolioID, "Visa", "1000", "100", "2026-04-01")

	updated, err := env.cards.UpdateCreditCard(ctx, card.CardID, &schemas.CreditCardRequest{
		OutstandingAmount: decPtr("250"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Visa", updated.CardName)
	assert.True(t, updated.OutstandingAmount.Equal(dec("250")))
	assert.True(t, updated.CreditLimit.Equal(dec("1000")))
	assert.Equal(t, "2026-04-01", updated.DueDate)
}

func TestDeleteCreditCard(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	portfolioID := env.mustPortfolio(t, "Main")
	card := env.mustCard(t, portfolioID, "Visa", "1000", "100", "2026-04-01")

	require.NoError(t, env.cards.DeleteCreditCard(ctx, card.CardID))
	_, err := env.cards.GetCreditCard(ctx, card.CardID)
	requireHTTPStatus(t, err, http.StatusNotFound)
}
