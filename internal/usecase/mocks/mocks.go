package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc     func(ctx context.Context, account *domain.Account) error
	GetByIDFunc    func(ctx context.Context, id, userID string) (*domain.Account, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Account, error)
	UpdateFunc     func(ctx context.Context, account *domain.Account) error
	DeleteFunc     func(ctx context.Context, id, userID string) error
	ApplyDeltaFunc func(ctx context.Context, uow usecase.UnitOfWork, accountID string, delta decimal.Decimal) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed places an account directly into the backing map.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// Balance reads the current balance of a seeded account.
func (m *MockAccountRepository) Balance(id string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id, userID string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok && acc.UserID == userID {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Account, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.UserID == userID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; !ok || acc.UserID != userID {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

func (m *MockAccountRepository) ApplyDelta(ctx context.Context, uow usecase.UnitOfWork, accountID string, delta decimal.Decimal) error {
	if m.ApplyDeltaFunc != nil {
		return m.ApplyDeltaFunc(ctx, uow, accountID, delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = acc.Balance.Add(delta)
	return nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	CreateFunc           func(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error
	GetByIDFunc          func(ctx context.Context, id, userID string) (*domain.Transaction, error)
	ListByUserFunc       func(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	ListByGroupFunc      func(ctx context.Context, groupID, userID string) ([]*domain.Transaction, error)
	ListDueRecurringFunc func(ctx context.Context, today time.Time) ([]*domain.Transaction, error)
	UpdateFunc           func(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error
	DeleteFunc           func(ctx context.Context, uow usecase.UnitOfWork, id, userID string) error
	DeleteByGroupFunc    func(ctx context.Context, uow usecase.UnitOfWork, groupID, userID string) ([]*domain.Transaction, error)
	UpdateRecurrenceFunc func(ctx context.Context, uow usecase.UnitOfWork, id string, nextDueDate *time.Time, current int, recurring bool) error
	SetPausedFunc        func(ctx context.Context, id, userID string, paused bool) (*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

// Seed places a transaction directly into the backing map.
func (m *MockTransactionRepository) Seed(tx *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
}

// Stored reads a transaction directly from the backing map.
func (m *MockTransactionRepository) Stored(id string) *domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transactions[id]
}

func (m *MockTransactionRepository) Create(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, uow, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id, userID string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok && tx.UserID == userID {
		cp := *tx
		return &cp, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			list = append(list, tx)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (m *MockTransactionRepository) ListByGroup(ctx context.Context, groupID, userID string) ([]*domain.Transaction, error) {
	if m.ListByGroupFunc != nil {
		return m.ListByGroupFunc(ctx, groupID, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID && tx.RecurrenceGroupID != nil && *tx.RecurrenceGroupID == groupID {
			list = append(list, tx)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockTransactionRepository) ListDueRecurring(ctx context.Context, today time.Time) ([]*domain.Transaction, error) {
	if m.ListDueRecurringFunc != nil {
		return m.ListDueRecurringFunc(ctx, today)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.Recurring && !tx.RecurrencePaused && tx.NextDueDate != nil && !tx.NextDueDate.After(today) {
			cp := *tx
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, uow, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[tx.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, uow usecase.UnitOfWork, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, uow, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx, ok := m.transactions[id]; !ok || tx.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) DeleteByGroup(ctx context.Context, uow usecase.UnitOfWork, groupID, userID string) ([]*domain.Transaction, error) {
	if m.DeleteByGroupFunc != nil {
		return m.DeleteByGroupFunc(ctx, uow, groupID, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted []*domain.Transaction
	for id, tx := range m.transactions {
		if tx.UserID == userID && tx.RecurrenceGroupID != nil && *tx.RecurrenceGroupID == groupID {
			deleted = append(deleted, tx)
			delete(m.transactions, id)
		}
	}
	sort.Slice(deleted, func(i, j int) bool { return deleted[i].ID < deleted[j].ID })
	return deleted, nil
}

func (m *MockTransactionRepository) UpdateRecurrence(ctx context.Context, uow usecase.UnitOfWork, id string, nextDueDate *time.Time, current int, recurring bool) error {
	if m.UpdateRecurrenceFunc != nil {
		return m.UpdateRecurrenceFunc(ctx, uow, id, nextDueDate, current, recurring)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	tx.NextDueDate = nextDueDate
	tx.RecurrenceCurrent = current
	tx.Recurring = recurring
	return nil
}

func (m *MockTransactionRepository) SetPaused(ctx context.Context, id, userID string, paused bool) (*domain.Transaction, error) {
	if m.SetPausedFunc != nil {
		return m.SetPausedFunc(ctx, id, userID, paused)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	tx.RecurrencePaused = paused
	cp := *tx
	return &cp, nil
}

// MockCardRepository is a mock implementation of CardRepository.
type MockCardRepository struct {
	mu    sync.RWMutex
	cards map[string]*domain.CreditCard

	CreateFunc     func(ctx context.Context, card *domain.CreditCard) error
	GetByIDFunc    func(ctx context.Context, id, userID string) (*domain.CreditCard, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.CreditCard, error)
	UpdateFunc     func(ctx context.Context, card *domain.CreditCard) error
	DeleteFunc     func(ctx context.Context, id, userID string) error
}

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{
		cards: make(map[string]*domain.CreditCard),
	}
}

// Seed places a card directly into the backing map.
func (m *MockCardRepository) Seed(card *domain.CreditCard) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[card.ID] = card
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.CreditCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[card.ID] = card
	return nil
}

func (m *MockCardRepository) GetByID(ctx context.Context, id, userID string) (*domain.CreditCard, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if card, ok := m.cards[id]; ok && card.UserID == userID {
		return card, nil
	}
	return nil, domain.ErrCardNotFound
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CreditCard, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cards []*domain.CreditCard
	for _, card := range m.cards {
		if card.UserID == userID {
			cards = append(cards, card)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (m *MockCardRepository) Update(ctx context.Context, card *domain.CreditCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[card.ID]; !ok {
		return domain.ErrCardNotFound
	}
	m.cards[card.ID] = card
	return nil
}

func (m *MockCardRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if card, ok := m.cards[id]; !ok || card.UserID != userID {
		return domain.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
// Buckets are keyed by card id + reference month, matching the unique
// constraint the real table carries.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
	nextID   int

	AccrueFunc           func(ctx context.Context, uow usecase.UnitOfWork, cardID, userID, month string, amount decimal.Decimal) error
	SubtractFunc         func(ctx context.Context, uow usecase.UnitOfWork, cardID, month string, amount decimal.Decimal) error
	GetByIDForUpdateFunc func(ctx context.Context, uow usecase.UnitOfWork, id, userID string) (*domain.Invoice, error)
	ListByCardFunc       func(ctx context.Context, cardID, userID string) ([]*domain.Invoice, error)
	MarkPaidFunc         func(ctx context.Context, uow usecase.UnitOfWork, id, userID, accountID string, paidAt time.Time) (*domain.Invoice, error)
	UsedAmountFunc       func(ctx context.Context, cardID string) (decimal.Decimal, error)
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.Invoice),
	}
}

func bucketKey(cardID, month string) string {
	return cardID + "|" + month
}

// Seed places an invoice directly into the backing map.
func (m *MockInvoiceRepository) Seed(inv *domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[bucketKey(inv.CreditCardID, inv.ReferenceMonth)] = inv
}

// BucketTotal reads a bucket's total, zero when the bucket does not exist.
func (m *MockInvoiceRepository) BucketTotal(cardID, month string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[bucketKey(cardID, month)]; ok {
		return inv.Total
	}
	return decimal.Zero
}

// Buckets returns how many buckets exist for a card.
func (m *MockInvoiceRepository) Buckets(cardID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, inv := range m.invoices {
		if inv.CreditCardID == cardID {
			n++
		}
	}
	return n
}

func (m *MockInvoiceRepository) Accrue(ctx context.Context, uow usecase.UnitOfWork, cardID, userID, month string, amount decimal.Decimal) error {
	if m.AccrueFunc != nil {
		return m.AccrueFunc(ctx, uow, cardID, userID, month, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := bucketKey(cardID, month)
	if inv, ok := m.invoices[key]; ok {
		inv.Total = inv.Total.Add(amount)
		return nil
	}
	m.nextID++
	m.invoices[key] = &domain.Invoice{
		ID:             fmt.Sprintf("inv-%d", m.nextID),
		CreditCardID:   cardID,
		UserID:         userID,
		ReferenceMonth: month,
		Total:          amount,
		CreatedAt:      time.Now().UTC(),
	}
	return nil
}

func (m *MockInvoiceRepository) Subtract(ctx context.Context, uow usecase.UnitOfWork, cardID, month string, amount decimal.Decimal) error {
	if m.SubtractFunc != nil {
		return m.SubtractFunc(ctx, uow, cardID, month, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := m.invoices[bucketKey(cardID, month)]; ok {
		inv.Total = decimal.Max(decimal.Zero, inv.Total.Sub(amount))
	}
	return nil
}

func (m *MockInvoiceRepository) GetByIDForUpdate(ctx context.Context, uow usecase.UnitOfWork, id, userID string) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, uow, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, inv := range m.invoices {
		if inv.ID == id && inv.UserID == userID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) ListByCard(ctx context.Context, cardID, userID string) ([]*domain.Invoice, error) {
	if m.ListByCardFunc != nil {
		return m.ListByCardFunc(ctx, cardID, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Invoice
	for _, inv := range m.invoices {
		if inv.CreditCardID == cardID && inv.UserID == userID {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ReferenceMonth > list[j].ReferenceMonth })
	return list, nil
}

func (m *MockInvoiceRepository) MarkPaid(ctx context.Context, uow usecase.UnitOfWork, id, userID, accountID string, paidAt time.Time) (*domain.Invoice, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, uow, id, userID, accountID, paidAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.invoices {
		if inv.ID == id && inv.UserID == userID {
			inv.Paid = true
			inv.PaidAt = &paidAt
			inv.PaidWithAccountID = &accountID
			cp := *inv
			return &cp, nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) UsedAmount(ctx context.Context, cardID string) (decimal.Decimal, error) {
	if m.UsedAmountFunc != nil {
		return m.UsedAmountFunc(ctx, cardID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	used := decimal.Zero
	for _, inv := range m.invoices {
		if inv.CreditCardID == cardID && !inv.Paid {
			used = used.Add(inv.Total)
		}
	}
	return used, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category

	CreateFunc     func(ctx context.Context, category *domain.Category) error
	GetByIDFunc    func(ctx context.Context, id, userID string) (*domain.Category, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Category, error)
	UpdateFunc     func(ctx context.Context, category *domain.Category) error
	DeleteFunc     func(ctx context.Context, id, userID string) error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id, userID string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.categories[id]; ok && c.UserID == userID {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Category, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.categories[id]; !ok || c.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]*domain.Goal

	CreateFunc     func(ctx context.Context, goal *domain.Goal) error
	GetByIDFunc    func(ctx context.Context, id, userID string) (*domain.Goal, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Goal, error)
	UpdateFunc     func(ctx context.Context, goal *domain.Goal) error
	DeleteFunc     func(ctx context.Context, id, userID string) error
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals: make(map[string]*domain.Goal),
	}
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id, userID string) (*domain.Goal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.goals[id]; ok && g.UserID == userID {
		return g, nil
	}
	return nil, domain.ErrGoalNotFound
}

func (m *MockGoalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			list = append(list, g)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.goals[id]; !ok || g.UserID != userID {
		return domain.ErrGoalNotFound
	}
	delete(m.goals, id)
	return nil
}

// MockInvestmentRepository is a mock implementation of InvestmentRepository.
type MockInvestmentRepository struct {
	mu          sync.RWMutex
	investments map[string]*domain.Investment

	CreateFunc     func(ctx context.Context, investment *domain.Investment) error
	GetByIDFunc    func(ctx context.Context, id, userID string) (*domain.Investment, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Investment, error)
	UpdateFunc     func(ctx context.Context, investment *domain.Investment) error
	DeleteFunc     func(ctx context.Context, id, userID string) error
}

func NewMockInvestmentRepository() *MockInvestmentRepository {
	return &MockInvestmentRepository{
		investments: make(map[string]*domain.Investment),
	}
}

func (m *MockInvestmentRepository) Create(ctx context.Context, investment *domain.Investment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, investment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investments[investment.ID] = investment
	return nil
}

func (m *MockInvestmentRepository) GetByID(ctx context.Context, id, userID string) (*domain.Investment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.investments[id]; ok && inv.UserID == userID {
		return inv, nil
	}
	return nil, domain.ErrInvestmentNotFound
}

func (m *MockInvestmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Investment, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Investment
	for _, inv := range m.investments {
		if inv.UserID == userID {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockInvestmentRepository) Update(ctx context.Context, investment *domain.Investment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, investment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.investments[investment.ID]; !ok {
		return domain.ErrInvestmentNotFound
	}
	m.investments[investment.ID] = investment
	return nil
}

func (m *MockInvestmentRepository) Delete(ctx context.Context, id, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := m.investments[id]; !ok || inv.UserID != userID {
		return domain.ErrInvestmentNotFound
	}
	delete(m.investments, id)
	return nil
}

// MockPushTokenRepository is a mock implementation of PushTokenRepository.
type MockPushTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*domain.PushToken

	RegisterFunc   func(ctx context.Context, token *domain.PushToken) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.PushToken, error)
	DeleteFunc     func(ctx context.Context, userID, token string) error
}

func NewMockPushTokenRepository() *MockPushTokenRepository {
	return &MockPushTokenRepository{
		tokens: make(map[string]*domain.PushToken),
	}
}

func (m *MockPushTokenRepository) Register(ctx context.Context, token *domain.PushToken) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.UserID+"|"+token.Token] = token
	return nil
}

func (m *MockPushTokenRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PushToken, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.PushToken
	for _, t := range m.tokens {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (m *MockPushTokenRepository) Delete(ctx context.Context, userID, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, userID+"|"+token)
	return nil
}

// MockTxManager is a mock implementation of TxManager.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.UnitOfWork, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.UnitOfWork, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockUnitOfWork{}, nil
}

// MockUnitOfWork is a mock implementation of UnitOfWork.
type MockUnitOfWork struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockPushNotifier is a mock implementation of PushNotifier. It records
// every delivered notification.
type MockPushNotifier struct {
	mu   sync.Mutex
	Sent []SentPush

	SendPushFunc func(ctx context.Context, userID, title, body string) error
}

type SentPush struct {
	UserID string
	Title  string
	Body   string
}

func NewMockPushNotifier() *MockPushNotifier {
	return &MockPushNotifier{}
}

func (m *MockPushNotifier) SendPush(ctx context.Context, userID, title, body string) error {
	if m.SendPushFunc != nil {
		return m.SendPushFunc(ctx, userID, title, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentPush{UserID: userID, Title: title, Body: body})
	return nil
}

// MockRetrier is a mock implementation of Retrier that invokes the
// operation exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockSweepMetrics is a mock implementation of SweepMetrics.
type MockSweepMetrics struct {
	mu        sync.Mutex
	Processed int
	Failed    int
}

func NewMockSweepMetrics() *MockSweepMetrics {
	return &MockSweepMetrics{}
}

func (m *MockSweepMetrics) RecurrenceProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Processed++
}

func (m *MockSweepMetrics) RecurrenceFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed++
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.Mutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	m.data[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
