package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		Type:           domain.AccountType(r.Type),
		InitialBalance: r.Balance,
		Color:          r.Color,
	}
}

// UpdateAccountRequest represents a partial account update.
type UpdateAccountRequest struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Color *string `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	input := usecase.UpdateAccountInput{
		Name:  r.Name,
		Color: r.Color,
	}
	if r.Type != nil {
		t := domain.AccountType(*r.Type)
		input.Type = &t
	}
	return input
}

// CreateTransactionRequest represents a request to create a transaction.
type CreateTransactionRequest struct {
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Date            time.Time       `json:"date"`
	CategoryID      *string         `json:"categoryId"`
	AccountID       *string         `json:"accountId"`
	CreditCardID    *string         `json:"creditCardId"`
	Recurring       bool            `json:"recurring"`
	Recurrence      *string         `json:"recurrence"`
	RecurrenceCount *int            `json:"recurrenceCount"`
	Installments    *int            `json:"installments"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	input := usecase.CreateTransactionInput{
		Description:     r.Description,
		Amount:          r.Amount,
		Type:            domain.TxType(r.Type),
		Date:            r.Date,
		CategoryID:      r.CategoryID,
		AccountID:       r.AccountID,
		CreditCardID:    r.CreditCardID,
		Recurring:       r.Recurring,
		RecurrenceCount: r.RecurrenceCount,
		Installments:    r.Installments,
	}
	if r.Recurrence != nil {
		c := domain.Cadence(*r.Recurrence)
		input.Recurrence = &c
	}
	return input
}

// UpdateTransactionRequest represents a partial transaction update. Absent
// fields are left unchanged.
type UpdateTransactionRequest struct {
	Description  *string          `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	Type         *string          `json:"type"`
	CategoryID   *string          `json:"categoryId"`
	Date         *time.Time       `json:"date"`
	AccountID    *string          `json:"accountId"`
	CreditCardID *string          `json:"creditCardId"`
	Installments *int             `json:"installments"`
	Recurring    *bool            `json:"recurring"`
	Recurrence   *string          `json:"recurrence"`
	NextDueDate  *time.Time       `json:"nextDueDate"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput() usecase.UpdateTransactionInput {
	input := usecase.UpdateTransactionInput{
		Description:  r.Description,
		Amount:       r.Amount,
		CategoryID:   r.CategoryID,
		Date:         r.Date,
		AccountID:    r.AccountID,
		CreditCardID: r.CreditCardID,
		Installments: r.Installments,
		Recurring:    r.Recurring,
		NextDueDate:  r.NextDueDate,
	}
	if r.Type != nil {
		t := domain.TxType(*r.Type)
		input.Type = &t
	}
	if r.Recurrence != nil {
		c := domain.Cadence(*r.Recurrence)
		input.Recurrence = &c
	}
	return input
}

// TransferRequest represents a transfer between two accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Description:   r.Description,
	}
}

// TogglePauseRequest flips a recurring definition's paused flag.
type TogglePauseRequest struct {
	Paused bool `json:"paused"`
}

// CreateCardRequest represents a request to create a credit card.
type CreateCardRequest struct {
	Name       string          `json:"name"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closingDay"`
	DueDay     int             `json:"dueDay"`
	Color      string          `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCardRequest) ToUseCaseInput() usecase.CreateCardInput {
	return usecase.CreateCardInput{
		Name:       r.Name,
		Limit:      r.Limit,
		ClosingDay: r.ClosingDay,
		DueDay:     r.DueDay,
		Color:      r.Color,
	}
}

// UpdateCardRequest represents a partial card update.
type UpdateCardRequest struct {
	Name       *string          `json:"name"`
	Limit      *decimal.Decimal `json:"limit"`
	ClosingDay *int             `json:"closingDay"`
	DueDay     *int             `json:"dueDay"`
	Color      *string          `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCardRequest) ToUseCaseInput() usecase.UpdateCardInput {
	return usecase.UpdateCardInput{
		Name:       r.Name,
		Limit:      r.Limit,
		ClosingDay: r.ClosingDay,
		DueDay:     r.DueDay,
		Color:      r.Color,
	}
}

// PayInvoiceRequest names the account paying an invoice.
type PayInvoiceRequest struct {
	AccountID string `json:"accountId"`
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:  r.Name,
		Type:  domain.TxType(r.Type),
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCategoryRequest) ToUseCaseInput() usecase.UpdateCategoryInput {
	return usecase.UpdateCategoryInput{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// CreateGoalRequest represents a request to create a goal.
type CreateGoalRequest struct {
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Deadline *time.Time      `json:"deadline"`
	Color    string          `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGoalRequest) ToUseCaseInput() usecase.CreateGoalInput {
	return usecase.CreateGoalInput{
		Name:     r.Name,
		Target:   r.Target,
		Deadline: r.Deadline,
		Color:    r.Color,
	}
}

// UpdateGoalRequest represents a partial goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name"`
	Target        *decimal.Decimal `json:"target"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time       `json:"deadline"`
	Color         *string          `json:"color"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateGoalRequest) ToUseCaseInput() usecase.UpdateGoalInput {
	return usecase.UpdateGoalInput{
		Name:          r.Name,
		Target:        r.Target,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline,
		Color:         r.Color,
	}
}

// CreateInvestmentRequest represents a request to create an investment.
type CreateInvestmentRequest struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Principal    decimal.Decimal `json:"principal"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	ReturnRate   decimal.Decimal `json:"returnRate"`
	StartDate    time.Time       `json:"startDate"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvestmentRequest) ToUseCaseInput() usecase.CreateInvestmentInput {
	return usecase.CreateInvestmentInput{
		Name:         r.Name,
		Type:         r.Type,
		Principal:    r.Principal,
		CurrentValue: r.CurrentValue,
		ReturnRate:   r.ReturnRate,
		StartDate:    r.StartDate,
	}
}

// UpdateInvestmentRequest represents a partial investment update.
type UpdateInvestmentRequest struct {
	Name         *string          `json:"name"`
	Type         *string          `json:"type"`
	Principal    *decimal.Decimal `json:"principal"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
	ReturnRate   *decimal.Decimal `json:"returnRate"`
	StartDate    *time.Time       `json:"startDate"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateInvestmentRequest) ToUseCaseInput() usecase.UpdateInvestmentInput {
	return usecase.UpdateInvestmentInput{
		Name:         r.Name,
		Type:         r.Type,
		Principal:    r.Principal,
		CurrentValue: r.CurrentValue,
		ReturnRate:   r.ReturnRate,
		StartDate:    r.StartDate,
	}
}

// RegisterPushTokenRequest registers a device push token.
type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}
