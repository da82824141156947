package services

import (
	"context"
	"fmt"
	"time"

	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"
)

const dueWarningDays = 5

// CreditCardService tracks credit card dues per portfolio. Due status is a
// pure function of the stored card and the injected clock.
type CreditCardService struct {
	cardRepo     repositories.CreditCardRepository
	portfolioSvc *PortfolioService
	clock        utils.Clock
}

func NewCreditCardService(
	cardRepo repositories.CreditCardRepository,
	portfolioSvc *PortfolioService,
	clock utils.Clock,
) *CreditCardService {
	return &CreditCardService{cardRepo: cardRepo, portfolioSvc: portfolioSvc, clock: clock}
}

func (s *CreditCardService) AddCreditCard(ctx context.Context, req *schemas.CreditCardRequest) (*schemas.CreditCardResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, req.PortfolioID); err != nil {
		return nil, err
	}
	if req.CardName == "" {
		return nil, utils.BadRequest("cardName must not be blank")
	}
	if req.CreditLimit == nil || req.CreditLimit.IsNegative() {
		return nil, utils.BadRequest("creditLimit is required and must not be negative")
	}
	if req.OutstandingAmount == nil || req.OutstandingAmount.IsNegative() {
		return nil, utils.BadRequest("outstandingAmount is required and must not be negative")
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	card := &models.CreditCard{
		PortfolioID:       req.PortfolioID,
		Name:              req.CardName,
		CreditLimit:       *req.CreditLimit,
		OutstandingAmount: *req.OutstandingAmount,
		DueDate:           dueDate,
	}
	if err := s.cardRepo.Create(ctx, card, nil); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).Infof("Credit card created: %d", card.ID)
	return s.mapToResponse(card), nil
}

func (s *CreditCardService) GetCreditCard(ctx context.Context, cardID int64) (*schemas.CreditCardResponse, error) {
	card, err := s.findByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return s.mapToResponse(card), nil
}

func (s *CreditCardService) GetPortfolioCreditCards(ctx context.Context, portfolioID int64) ([]schemas.CreditCardResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.GetByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(cards), nil
}

// GetUpcomingDueCards lists cards due within the warning window.
func (s *CreditCardService) GetUpcomingDueCards(ctx context.Context, portfolioID int64) ([]schemas.CreditCardResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	today := s.clock.Now().Truncate(24 * time.Hour)
	cards, err := s.cardRepo.GetDueBetween(ctx, portfolioID, today, today.AddDate(0, 0, dueWarningDays))
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(cards), nil
}

func (s *CreditCardService) GetOverdueCards(ctx context.Context, portfolioID int64) ([]schemas.CreditCardResponse, error) {
	if _, err := s.portfolioSvc.findPortfolioByID(ctx, portfolioID); err != nil {
		return nil, err
	}
	today := s.clock.Now().Truncate(24 * time.Hour)
	cards, err := s.cardRepo.GetOverdue(ctx, portfolioID, today)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(cards), nil
}

func (s *CreditCardService) UpdateCreditCard(ctx context.Context, cardID int64, req *schemas.CreditCardRequest) (*schemas.CreditCardResponse, error) {
	card, err := s.findByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if req.CardName != "" {
		card.Name = req.CardName
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, utils.BadRequest("creditLimit must not be negative")
		}
		card.CreditLimit = *req.CreditLimit
	}
	if req.OutstandingAmount != nil {
		if req.OutstandingAmount.IsNegative() {
			return nil, utils.BadRequest("outstandingAmount must not be negative")
		}
		card.OutstandingAmount = *req.OutstandingAmount
	}
	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		card.DueDate = dueDate
	}

	if err := s.cardRepo.Update(ctx, card, nil); err != nil {
		return nil, err
	}
	utils.LoggerFromContext(ctx).Infof("Credit card %d updated", cardID)
	return s.mapToResponse(card), nil
}

func (s *CreditCardService) DeleteCreditCard(ctx context.Context, cardID int64) error {
	card, err := s.findByID(ctx, cardID)
	if err != nil {
		return err
	}
	if err := s.cardRepo.Delete(ctx, card.ID, nil); err != nil {
		return err
	}
	utils.LoggerFromContext(ctx).Infof("Credit card %d deleted", cardID)
	return nil
}

func (s *CreditCardService) findByID(ctx context.Context, cardID int64) (*models.CreditCard, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, utils.NotFound(fmt.Sprintf("credit card not found with ID: %d", cardID))
	}
	return card, nil
}

func parseDueDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, utils.BadRequest("dueDate is required")
	}
	dueDate, err := time.Parse(utils.ShortDashDateLayout, raw)
	if err != nil {
		return time.Time{}, utils.BadRequest("dueDate must be formatted as YYYY-MM-DD")
	}
	return dueDate, nil
}

func (s *CreditCardService) mapAllToResponse(cards []models.CreditCard) []schemas.CreditCardResponse {
	responses := make([]schemas.CreditCardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, *s.mapToResponse(&cards[i]))
	}
	return responses
}

func (s *CreditCardService) mapToResponse(card *models.CreditCard) *schemas.CreditCardResponse {
	now := s.clock.Now()
	status := models.CardDueStatus(card, now)
	days := models.DaysUntilDue(card, now)

	var alert string
	switch status {
	case models.DueStatusOverdue:
		alert = fmt.Sprintf("OVERDUE: '%s' is %d days overdue, pay immediately", card.Name, -days)
	case models.DueStatusWarning:
		alert = fmt.Sprintf("WARNING: '%s' due in %d day(s), pay soon", card.Name, days)
	default:
		alert = fmt.Sprintf("OK: '%s' due in %d days", card.Name, days)
	}

	return &schemas.CreditCardResponse{
		CardID:            card.ID,
		PortfolioID:       card.PortfolioID,
		CardName:          card.Name,
		CreditLimit:       card.CreditLimit,
		OutstandingAmount: card.OutstandingAmount,
		AvailableCredit:   models.AvailableCredit(card),
		CreditUtilization: models.CreditUtilization(card),
		DueDate:           card.DueDate.Format(utils.ShortDashDateLayout),
		DaysUntilDue:      days,
		DueStatus:         string(status),
		AlertMessage:      alert,
	}
}
