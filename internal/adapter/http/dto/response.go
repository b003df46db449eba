package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// ErrorResponse represents an error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// AccountFromDomain converts a domain account.
func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts a slice of domain accounts.
func AccountsFromDomain(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountFromDomain(a))
	}
	return out
}

// TransactionResponse represents a transaction.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	Date              time.Time       `json:"date"`
	CategoryID        *string         `json:"categoryId,omitempty"`
	AccountID         *string         `json:"accountId,omitempty"`
	CreditCardID      *string         `json:"creditCardId,omitempty"`
	Recurring         bool            `json:"recurring"`
	Recurrence        *string         `json:"recurrence,omitempty"`
	NextDueDate       *time.Time      `json:"nextDueDate,omitempty"`
	RecurrenceCount   *int            `json:"recurrenceCount,omitempty"`
	RecurrenceCurrent int             `json:"recurrenceCurrent"`
	RecurrenceGroupID *string         `json:"recurrenceGroupId,omitempty"`
	RecurrencePaused  bool            `json:"recurrencePaused"`
	Installments      *int            `json:"installments,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// TransactionFromDomain converts a domain transaction.
func TransactionFromDomain(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                t.ID,
		Description:       t.Description,
		Amount:            t.Amount,
		Type:              string(t.Type),
		Date:              t.Date,
		CategoryID:        t.CategoryID,
		AccountID:         t.AccountID,
		CreditCardID:      t.CreditCardID,
		Recurring:         t.Recurring,
		NextDueDate:       t.NextDueDate,
		RecurrenceCount:   t.RecurrenceCount,
		RecurrenceCurrent: t.RecurrenceCurrent,
		RecurrenceGroupID: t.RecurrenceGroupID,
		RecurrencePaused:  t.RecurrencePaused,
		Installments:      t.Installments,
		CreatedAt:         t.CreatedAt,
	}
	if t.Recurrence != nil {
		s := string(*t.Recurrence)
		resp.Recurrence = &s
	}
	return resp
}

// TransactionsFromDomain converts a slice of domain transactions.
func TransactionsFromDomain(txs []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, TransactionFromDomain(t))
	}
	return out
}

// CardResponse represents a credit card with usage.
type CardResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Limit      decimal.Decimal `json:"limit"`
	Used       decimal.Decimal `json:"used"`
	Available  decimal.Decimal `json:"available"`
	ClosingDay int             `json:"closingDay"`
	DueDay     int             `json:"dueDay"`
	Color      string          `json:"color"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CardFromDomain converts a domain card without usage figures.
func CardFromDomain(c *domain.CreditCard) CardResponse {
	return CardResponse{
		ID:         c.ID,
		Name:       c.Name,
		Limit:      c.Limit,
		Available:  c.Limit,
		ClosingDay: c.ClosingDay,
		DueDay:     c.DueDay,
		Color:      c.Color,
		CreatedAt:  c.CreatedAt,
	}
}

// CardFromUsage converts a card with its open-invoice usage.
func CardFromUsage(u *usecase.CardWithUsage) CardResponse {
	resp := CardFromDomain(u.Card)
	resp.Used = u.Used
	resp.Available = u.Available
	return resp
}

// CardsFromUsage converts a slice of cards with usage.
func CardsFromUsage(cards []*usecase.CardWithUsage) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, CardFromUsage(c))
	}
	return out
}

// InvoiceResponse represents a credit card invoice bucket.
type InvoiceResponse struct {
	ID                string          `json:"id"`
	CreditCardID      string          `json:"creditCardId"`
	ReferenceMonth    string          `json:"referenceMonth"`
	Total             decimal.Decimal `json:"total"`
	Paid              bool            `json:"paid"`
	PaidAt            *time.Time      `json:"paidAt,omitempty"`
	PaidWithAccountID *string         `json:"paidWithAccountId,omitempty"`
}

// InvoiceFromDomain converts a domain invoice.
func InvoiceFromDomain(i *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                i.ID,
		CreditCardID:      i.CreditCardID,
		ReferenceMonth:    i.ReferenceMonth,
		Total:             i.Total,
		Paid:              i.Paid,
		PaidAt:            i.PaidAt,
		PaidWithAccountID: i.PaidWithAccountID,
	}
}

// InvoicesFromDomain converts a slice of domain invoices.
func InvoicesFromDomain(invoices []*domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, InvoiceFromDomain(i))
	}
	return out
}

// CategoryResponse represents a category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryFromDomain converts a domain category.
func CategoryFromDomain(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Type:  string(c.Type),
		Color: c.Color,
		Icon:  c.Icon,
	}
}

// CategoriesFromDomain converts a slice of domain categories.
func CategoriesFromDomain(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryFromDomain(c))
	}
	return out
}

// GoalResponse represents a saving goal.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Target        decimal.Decimal `json:"target"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Color         string          `json:"color"`
}

// GoalFromDomain converts a domain goal.
func GoalFromDomain(g *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		Target:        g.Target,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Color:         g.Color,
	}
}

// GoalsFromDomain converts a slice of domain goals.
func GoalsFromDomain(goals []*domain.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalFromDomain(g))
	}
	return out
}

// InvestmentResponse is an investment over the wire.
type InvestmentResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Principal    decimal.Decimal `json:"principal"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	ReturnRate   decimal.Decimal `json:"returnRate"`
	StartDate    time.Time       `json:"startDate"`
}

// InvestmentFromDomain converts a domain investment.
func InvestmentFromDomain(i *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:           i.ID,
		Name:         i.Name,
		Type:         i.Type,
		Principal:    i.Principal,
		CurrentValue: i.CurrentValue,
		ReturnRate:   i.ReturnRate,
		StartDate:    i.StartDate,
	}
}

// InvestmentsFromDomain converts a slice of domain investments.
func InvestmentsFromDomain(investments []*domain.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(investments))
	for _, i := range investments {
		out = append(out, InvestmentFromDomain(i))
	}
	return out
}

// SweepResponse summarizes a recurrence sweep run.
type SweepResponse struct {
	Due       int `json:"due"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
