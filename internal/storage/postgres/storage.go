package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	"courierpay/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type participantRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type balanceRepository struct {
	storage *Storage
}

type payoutRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Participants() repository.ParticipantRepository {
	return &participantRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

func (s *Storage) Payouts() repository.PayoutRepository {
	return &payoutRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS participants (
            id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            last_order_id BIGINT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGINT GENERATED ALWAYS AS IDENTITY (START WITH 0 MINVALUE 0) PRIMARY KEY,
            buyer_id BIGINT NOT NULL REFERENCES participants(id),
            driver_id BIGINT REFERENCES participants(id),
            price BIGINT NOT NULL,
            tip BIGINT NOT NULL,
            delivered BOOLEAN NOT NULL DEFAULT FALSE,
            driver_assigned_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS balances (
            participant_id BIGINT PRIMARY KEY REFERENCES participants(id),
            amount BIGINT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS payouts (
            id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
            participant_id BIGINT NOT NULL REFERENCES participants(id),
            amount BIGINT NOT NULL,
            processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_payouts_participant ON payouts(participant_id, processed_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ParticipantRepository implementation ---

func (r *participantRepository) Create(ctx context.Context, login, passwordHash string) (*model.Participant, error) {
	const query = `INSERT INTO participants (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var p model.Participant
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	p.Login = login
	p.PasswordHash = passwordHash
	return &p, nil
}

func (r *participantRepository) GetByLogin(ctx context.Context, login string) (*model.Participant, error) {
	const query = `SELECT id, login, password_hash, last_order_id, created_at FROM participants WHERE login=$1`
	var p model.Participant
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&p.ID, &p.Login, &p.PasswordHash, &p.LastOrderID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*model.Participant, error) {
	const query = `SELECT id, login, password_hash, last_order_id, created_at FROM participants WHERE id=$1`
	var p model.Participant
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Login, &p.PasswordHash, &p.LastOrderID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) Ensure(ctx context.Context, login, passwordHash string) (*model.Participant, error) {
	existing, err := r.GetByLogin(ctx, login)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	created, err := r.Create(ctx, login, passwordHash)
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return r.GetByLogin(ctx, login)
	}
	return created, err
}

// --- OrderRepository implementation ---

const orderColumns = `id, buyer_id, driver_id, price, tip, delivered, driver_assigned_at, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.BuyerID, &o.DriverID, &o.Price, &o.Tip, &o.Delivered, &o.DriverAssignedAt, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Place(ctx context.Context, buyerID, price, tip, adminID int64) (*model.Order, error) {
	order := &model.Order{BuyerID: buyerID, Price: price, Tip: tip}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO orders (buyer_id, price, tip) VALUES ($1, $2, $3) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insert, buyerID, price, tip).Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}
		if err := r.storage.creditTx(ctx, tx, adminID, price-tip); err != nil {
			return err
		}
		const remember = `UPDATE participants SET last_order_id=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, remember, order.ID, buyerID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
}

func (r *orderRepository) LastOrderID(ctx context.Context, buyerID int64) (int64, error) {
	const query = `SELECT last_order_id FROM participants WHERE id=$1`
	var last *int64
	err := r.storage.pool.QueryRow(ctx, query, buyerID).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	return *last, nil
}

const lockOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`

func (r *orderRepository) AssignDriver(ctx context.Context, orderID, driverID int64, at time.Time, guard repository.OrderGuard) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, lockOrder, orderID))
		if err != nil {
			return err
		}
		if err := guard(order); err != nil {
			return err
		}
		const update = `UPDATE orders SET driver_id=$1, driver_assigned_at=$2 WHERE id=$3`
		if _, err := tx.Exec(ctx, update, driverID, at, orderID); err != nil {
			return err
		}
		order.DriverID = &driverID
		order.DriverAssignedAt = &at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) CompleteDelivery(ctx context.Context, orderID int64, guard repository.OrderGuard) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, lockOrder, orderID))
		if err != nil {
			return err
		}
		if err := guard(order); err != nil {
			return err
		}
		if err := r.storage.creditTx(ctx, tx, *order.DriverID, order.Tip); err != nil {
			return err
		}
		const update = `UPDATE orders SET delivered=TRUE WHERE id=$1`
		if _, err := tx.Exec(ctx, update, orderID); err != nil {
			return err
		}
		order.Delivered = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID, refund int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, lockOrder, orderID))
		if err != nil {
			return err
		}
		if err := r.storage.creditTx(ctx, tx, order.BuyerID, refund); err != nil {
			return err
		}
		const update = `UPDATE orders SET tip=0 WHERE id=$1`
		if _, err := tx.Exec(ctx, update, orderID); err != nil {
			return err
		}
		order.Tip = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// --- BalanceRepository implementation ---

func (s *Storage) creditTx(ctx context.Context, tx pgx.Tx, participantID, amount int64) error {
	const upsert = `INSERT INTO balances (participant_id, amount)
                    VALUES ($1, $2)
                    ON CONFLICT (participant_id) DO UPDATE SET amount = balances.amount + EXCLUDED.amount`
	if _, err := tx.Exec(ctx, upsert, participantID, amount); err != nil {
		return err
	}
	return nil
}

func (r *balanceRepository) Get(ctx context.Context, participantID int64) (int64, error) {
	const query = `SELECT amount FROM balances WHERE participant_id=$1`
	var amount int64
	err := r.storage.pool.QueryRow(ctx, query, participantID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return amount, nil
}

func (r *balanceRepository) Deposit(ctx context.Context, participantID, amount int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditTx(ctx, tx, participantID, amount)
	})
}

func (r *balanceRepository) Withdraw(ctx context.Context, participantID, amount int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockedBalance(ctx, tx, participantID)
		if err != nil {
			return err
		}
		if current < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const debit = `UPDATE balances SET amount = amount - $2 WHERE participant_id=$1`
		if _, err := tx.Exec(ctx, debit, participantID, amount); err != nil {
			return err
		}

		const insertPayout = `INSERT INTO payouts (participant_id, amount) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, insertPayout, participantID, amount); err != nil {
			return err
		}
		return nil
	})
}

func (r *balanceRepository) Transfer(ctx context.Context, fromID, toID, amount int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockedBalance(ctx, tx, fromID)
		if err != nil {
			return err
		}
		if current < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const debit = `UPDATE balances SET amount = amount - $2 WHERE participant_id=$1`
		if _, err := tx.Exec(ctx, debit, fromID, amount); err != nil {
			return err
		}
		return r.storage.creditTx(ctx, tx, toID, amount)
	})
}

func lockedBalance(ctx context.Context, tx pgx.Tx, participantID int64) (int64, error) {
	const query = `SELECT amount FROM balances WHERE participant_id=$1 FOR UPDATE`
	var amount int64
	err := tx.QueryRow(ctx, query, participantID).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return amount, nil
}

// --- PayoutRepository implementation ---

func (r *payoutRepository) ListByParticipant(ctx context.Context, participantID int64) ([]model.Payout, error) {
	const query = `SELECT id, participant_id, amount, processed_at
                   FROM payouts WHERE participant_id=$1 ORDER BY processed_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payout
	for rows.Next() {
		var p model.Payout
		if err := rows.Scan(&p.ID, &p.ParticipantID, &p.Amount, &p.ProcessedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
