package test

import (
	"context"
	"sync"
	"time"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	"courierpay/internal/domain/repository"
)

// ParticipantRepositoryStub stores participants in-memory for tests.
type ParticipantRepositoryStub struct {
	Participants map[string]*model.Participant
	ByID         map[int64]*model.Participant
	Next         int64
	Err          error
}

// NewParticipantRepositoryStub constructs stub repository with initialized maps.
func NewParticipantRepositoryStub() *ParticipantRepositoryStub {
	return &ParticipantRepositoryStub{
		Participants: make(map[string]*model.Participant),
		ByID:         make(map[int64]*model.Participant),
		Next:         1,
	}
}

// Create registers participant unless already exists or stub has explicit error.
func (s *ParticipantRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Participant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Participants == nil {
		s.Participants = make(map[string]*model.Participant)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Participant)
	}
	if _, exists := s.Participants[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	p := &model.Participant{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Participants[login] = p
	s.ByID[p.ID] = p
	return p, nil
}

// GetByLogin fetches participant by login or returns not found.
func (s *ParticipantRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Participant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Participants[login]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches participant by identifier or returns not found.
func (s *ParticipantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Participant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.ByID[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Ensure returns existing participant or creates a fresh one.
func (s *ParticipantRepositoryStub) Ensure(ctx context.Context, login, passwordHash string) (*model.Participant, error) {
	if p, err := s.GetByLogin(ctx, login); err == nil {
		return p, nil
	}
	return s.Create(ctx, login, passwordHash)
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	PlaceFn            func(context.Context, int64, int64, int64, int64) (*model.Order, error)
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	LastOrderIDFn      func(context.Context, int64) (int64, error)
	AssignDriverFn     func(context.Context, int64, int64, time.Time, repository.OrderGuard) (*model.Order, error)
	CompleteDeliveryFn func(context.Context, int64, repository.OrderGuard) (*model.Order, error)
	CancelFn           func(context.Context, int64, int64) (*model.Order, error)
}

func (s *OrderRepositoryStub) Place(ctx context.Context, buyerID, price, tip, adminID int64) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, buyerID, price, tip, adminID)
	}
	return &model.Order{ID: 0, BuyerID: buyerID, Price: price, Tip: tip}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	if s.LastOrderIDFn != nil {
		return s.LastOrderIDFn(ctx, buyerID)
	}
	return 0, nil
}

func (s *OrderRepositoryStub) AssignDriver(ctx context.Context, orderID, driverID int64, at time.Time, guard repository.OrderGuard) (*model.Order, error) {
	if s.AssignDriverFn != nil {
		return s.AssignDriverFn(ctx, orderID, driverID, at, guard)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) CompleteDelivery(ctx context.Context, orderID int64, guard repository.OrderGuard) (*model.Order, error) {
	if s.CompleteDeliveryFn != nil {
		return s.CompleteDeliveryFn(ctx, orderID, guard)
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID, refund int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, refund)
	}
	return nil, domainErrors.ErrOrderNotFound
}

// BalanceRepositoryStub lets tests control balance data.
type BalanceRepositoryStub struct {
	GetFn      func(context.Context, int64) (int64, error)
	DepositFn  func(context.Context, int64, int64) error
	WithdrawFn func(context.Context, int64, int64) error
	TransferFn func(context.Context, int64, int64, int64) error
	Amount     int64
}

func (s *BalanceRepositoryStub) Get(ctx context.Context, participantID int64) (int64, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, participantID)
	}
	return s.Amount, nil
}

func (s *BalanceRepositoryStub) Deposit(ctx context.Context, participantID, amount int64) error {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, participantID, amount)
	}
	return nil
}

func (s *BalanceRepositoryStub) Withdraw(ctx context.Context, participantID, amount int64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, participantID, amount)
	}
	return nil
}

func (s *BalanceRepositoryStub) Transfer(ctx context.Context, fromID, toID, amount int64) error {
	if s.TransferFn != nil {
		return s.TransferFn(ctx, fromID, toID, amount)
	}
	return nil
}

// PayoutRepositoryStub stores payout history for tests.
type PayoutRepositoryStub struct {
	ListFn func(context.Context, int64) ([]model.Payout, error)
	Items  []model.Payout
}

func (s *PayoutRepositoryStub) ListByParticipant(ctx context.Context, participantID int64) ([]model.Payout, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, participantID)
	}
	return s.Items, nil
}

// LedgerStub is an in-memory implementation of the order, balance, and
// payout repositories with the same transactional behaviour as the real
// storage: guard failures abort without mutating, balances never go
// negative. It lets scenario tests run the full escrow flow without a
// database.
type LedgerStub struct {
	mu       sync.Mutex
	orders   map[int64]*model.Order
	balances map[int64]int64
	payouts  []model.Payout
	lastByID map[int64]int64
	nextID   int64
	Now      func() time.Time
}

// NewLedgerStub constructs an empty in-memory ledger. Order ids start at 0.
func NewLedgerStub() *LedgerStub {
	return &LedgerStub{
		orders:   make(map[int64]*model.Order),
		balances: make(map[int64]int64),
		lastByID: make(map[int64]int64),
		Now:      time.Now,
	}
}

func (l *LedgerStub) Place(ctx context.Context, buyerID, price, tip, adminID int64) (*model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order := &model.Order{
		ID:        l.nextID,
		BuyerID:   buyerID,
		Price:     price,
		Tip:       tip,
		CreatedAt: l.Now(),
	}
	l.nextID++
	l.orders[order.ID] = order
	l.balances[adminID] += price - tip
	l.lastByID[buyerID] = order.ID
	copied := *order
	return &copied, nil
}

func (l *LedgerStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (l *LedgerStub) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastByID[buyerID], nil
}

func (l *LedgerStub) AssignDriver(ctx context.Context, orderID, driverID int64, at time.Time, guard repository.OrderGuard) (*model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	if err := guard(order); err != nil {
		return nil, err
	}
	order.DriverID = &driverID
	order.DriverAssignedAt = &at
	copied := *order
	return &copied, nil
}

func (l *LedgerStub) CompleteDelivery(ctx context.Context, orderID int64, guard repository.OrderGuard) (*model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	if err := guard(order); err != nil {
		return nil, err
	}
	l.balances[*order.DriverID] += order.Tip
	order.Delivered = true
	copied := *order
	return &copied, nil
}

func (l *LedgerStub) Cancel(ctx context.Context, orderID, refund int64) (*model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	l.balances[order.BuyerID] += refund
	order.Tip = 0
	copied := *order
	return &copied, nil
}

func (l *LedgerStub) Get(ctx context.Context, participantID int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[participantID], nil
}

func (l *LedgerStub) Deposit(ctx context.Context, participantID, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[participantID] += amount
	return nil
}

func (l *LedgerStub) Withdraw(ctx context.Context, participantID, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[participantID] < amount {
		return domainErrors.ErrInsufficientBalance
	}
	l.balances[participantID] -= amount
	l.payouts = append(l.payouts, model.Payout{
		ID:            int64(len(l.payouts) + 1),
		ParticipantID: participantID,
		Amount:        amount,
		ProcessedAt:   l.Now(),
	})
	return nil
}

func (l *LedgerStub) Transfer(ctx context.Context, fromID, toID, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[fromID] < amount {
		return domainErrors.ErrInsufficientBalance
	}
	l.balances[fromID] -= amount
	l.balances[toID] += amount
	return nil
}

func (l *LedgerStub) ListByParticipant(ctx context.Context, participantID int64) ([]model.Payout, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.Payout
	for _, p := range l.payouts {
		if p.ParticipantID == participantID {
			out = append(out, p)
		}
	}
	return out, nil
}

var (
	_ repository.OrderRepository   = (*LedgerStub)(nil)
	_ repository.BalanceRepository = (*LedgerStub)(nil)
	_ repository.PayoutRepository  = (*LedgerStub)(nil)
)
