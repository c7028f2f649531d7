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

	domainErrors "github.com/polkiloo/foodstall/internal/domain/errors"
	"github.com/polkiloo/foodstall/internal/domain/model"
	"github.com/polkiloo/foodstall/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
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

type orderRepository struct {
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

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            order_id TEXT PRIMARY KEY,
            dine_option TEXT NOT NULL,
            submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            payment_method TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(order_id),
            item TEXT NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity > 0),
            price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
            subtotal NUMERIC(10, 2) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_submitted ON orders(submitted_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, orderID string, dine model.DineOption, items []model.LineItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return nil, domainErrors.ErrInvalidPrice
		}
	}

	const insertOrder = `INSERT INTO orders (order_id, dine_option, status, payment_status)
                         VALUES ($1, $2, $3, $4)
                         RETURNING submitted_at`
	const insertItem = `INSERT INTO order_items (order_id, item, quantity, price, subtotal)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING id`

	order := &model.Order{
		ID:            orderID,
		DineOption:    dine,
		Status:        model.OrderStatusInKitchen,
		PaymentStatus: model.PaymentStatusUnpaid,
	}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrder, orderID, dine, order.Status, order.PaymentStatus).Scan(&order.SubmittedAt); err != nil {
			return err
		}
		order.Items = make([]model.LineItem, 0, len(items))
		for _, item := range items {
			row := model.NewLineItem(item.Item, item.UnitPrice, item.Quantity)
			row.OrderID = orderID
			if err := tx.QueryRow(ctx, insertItem, orderID, row.Item, row.Quantity, row.UnitPrice, row.Subtotal).Scan(&row.ID); err != nil {
				return err
			}
			order.Items = append(order.Items, row)
		}
		return nil
	})
	if err != nil {
		return nil, translateError("create order", err)
	}
	return order, nil
}

func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT o.order_id, o.dine_option, o.submitted_at, o.status, o.payment_status, o.payment_method,
                          i.id, i.item, i.quantity, i.price, i.subtotal
                   FROM orders o JOIN order_items i ON o.order_id = i.order_id
                   ORDER BY o.submitted_at DESC, o.order_id, i.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, translateError("list orders", err)
	}
	defer rows.Close()

	var result []model.Order
	positions := make(map[string]int)
	for rows.Next() {
		var o model.Order
		var item model.LineItem
		if err := rows.Scan(&o.ID, &o.DineOption, &o.SubmittedAt, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
			&item.ID, &item.Item, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, translateError("scan orders", err)
		}
		item.OrderID = o.ID
		pos, seen := positions[o.ID]
		if !seen {
			pos = len(result)
			positions[o.ID] = pos
			result = append(result, o)
		}
		result[pos].Items = append(result[pos].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list orders", err)
	}
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	const query = `SELECT order_id, dine_option, submitted_at, status, payment_status, payment_method
                   FROM orders WHERE order_id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&o.ID, &o.DineOption, &o.SubmittedAt, &o.Status, &o.PaymentStatus, &o.PaymentMethod)
	if err != nil {
		return nil, translateError("get order", err)
	}
	return &o, nil
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]model.LineItem, error) {
	const query = `SELECT id, order_id, item, quantity, price, subtotal
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, translateError("list items", err)
	}
	defer rows.Close()

	var result []model.LineItem
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Item, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, translateError("scan items", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list items", err)
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	const query = `UPDATE orders SET status=$1 WHERE order_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return translateError("update status", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdatePayment(ctx context.Context, orderID, method string) error {
	const query = `UPDATE orders SET payment_status=$1, payment_method=$2 WHERE order_id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, model.PaymentStatusPaid, method, orderID)
	if err != nil {
		return translateError("update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// translateError maps driver errors onto domain sentinels.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return domainErrors.ErrDuplicateOrderID
	case errors.Is(err, pgx.ErrNoRows):
		return domainErrors.ErrNotFound
	default:
		return fmt.Errorf("%w: %s: %w", domainErrors.ErrStorageFailure, op, err)
	}
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
