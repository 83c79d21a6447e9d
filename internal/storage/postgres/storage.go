package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage facade.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type categoryRepository struct {
	storage *Storage
}

// newPgxPool is replaced in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            category_id BIGINT NOT NULL REFERENCES categories(id),
            name TEXT NOT NULL,
            price BIGINT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_code TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            shipping_address TEXT NOT NULL,
            total_amount BIGINT NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            snap_token TEXT NOT NULL DEFAULT '',
            resi_code TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            quantity INT NOT NULL CHECK (quantity >= 1),
            price BIGINT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, phone, address, role)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	u := user
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Phone, user.Address, user.Role).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, phone, address, role, created_at
                   FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, phone, address, role, created_at
                   FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email, password_hash, phone, address, role, created_at
                   FROM users ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) CreateCheckout(ctx context.Context, draft model.OrderDraft, issue repository.TokenIssuer) (*model.Order, error) {
	order := model.Order{
		Code:            uuid.NewString(),
		UserID:          draft.UserID,
		ShippingAddress: draft.ShippingAddress,
		Notes:           draft.Notes,
		Status:          model.OrderStatusPending,
	}
	items := make([]model.OrderItem, len(draft.Items))
	copy(items, draft.Items)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (order_code, user_id, shipping_address, status, notes)
                             VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.Code, order.UserID, order.ShippingAddress, order.Status, order.Notes).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, quantity, price)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id`
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, order.ID, items[i].ProductID, items[i].Name, items[i].Quantity, items[i].Price).
				Scan(&items[i].ID); err != nil {
				return err
			}
		}

		order.TotalAmount = draft.Total()
		const setTotal = `UPDATE orders SET total_amount=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, setTotal, order.TotalAmount, order.ID); err != nil {
			return err
		}

		token, err := issue(ctx, &order, items)
		if err != nil {
			return err
		}
		if token == "" {
			return domainErrors.ErrPaymentGateway
		}

		const setToken = `UPDATE orders SET snap_token=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, setToken, token, order.ID); err != nil {
			return err
		}
		order.SnapToken = token
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

const orderColumns = `id, order_code, user_id, shipping_address, total_amount, status, notes, snap_token, resi_code, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.Code, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.Status,
		&o.Notes, &o.SnapToken, &o.ResiCode, &o.CreatedAt, &o.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_code=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, code), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, name, quantity, price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Code, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.Status,
			&o.Notes, &o.SnapToken, &o.ResiCode, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int, error) {
	var (
		conds []string
		args  []any
	)

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		conds = append(conds, fmt.Sprintf("o.status = ANY($%d)", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(o.order_code ILIKE $%d OR o.total_amount::TEXT ILIKE $%d OR o.shipping_address ILIKE $%d OR o.resi_code ILIKE $%d OR u.name ILIKE $%d)`,
			n, n, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM orders o JOIN users u ON u.id = o.user_id` + where
	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	args = append(args, pageSize, (page-1)*pageSize)
	listQuery := fmt.Sprintf(
		`SELECT o.id, o.order_code, o.user_id, o.shipping_address, o.total_amount, o.status, o.notes, o.snap_token, o.resi_code, o.created_at, o.updated_at, u.name
         FROM orders o JOIN users u ON u.id = o.user_id%s
         ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Code, &o.UserID, &o.ShippingAddress, &o.TotalAmount, &o.Status,
			&o.Notes, &o.SnapToken, &o.ResiCode, &o.CreatedAt, &o.UpdatedAt, &o.UserName); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// lockStatus reads the current status under a row lock so concurrent
// callbacks serialize on the order.
func lockStatus(ctx context.Context, tx pgx.Tx, orderID int64) (model.OrderStatus, error) {
	var current model.OrderStatus
	err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return current, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockStatus(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if current == status {
			return nil
		}
		if !model.CanTransition(current, status) {
			r.storage.logger.Warn("rejected status transition",
				slog.Int64("order_id", orderID),
				slog.String("from", string(current)),
				slog.String("to", string(status)),
			)
			return domainErrors.ErrInvalidTransition
		}
		_, err = tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, orderID)
		return err
	})
}

func (r *orderRepository) UpdateStatusShipped(ctx context.Context, orderID int64, resiCode string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockStatus(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !model.CanTransition(current, model.OrderStatusShipped) {
			return domainErrors.ErrInvalidTransition
		}
		_, err = tx.Exec(ctx,
			`UPDATE orders SET resi_code=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			resiCode, model.OrderStatusShipped, orderID)
		return err
	})
}

func (r *orderRepository) ExpireStale(ctx context.Context, olderThanSeconds int64, limit int) ([]int64, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id IN (
                       SELECT id FROM orders
                       WHERE status=$2 AND created_at < NOW() - make_interval(secs => $3)
                       ORDER BY created_at
                       LIMIT $4
                       FOR UPDATE SKIP LOCKED
                   )
                   RETURNING id`
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusExpired, model.OrderStatusPending, olderThanSeconds, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (category_id, name, price, image)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	p := product
	err := r.storage.pool.QueryRow(ctx, query, product.CategoryID, product.Name, product.Price, product.Image).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT p.id, p.category_id, p.name, p.price, p.image, p.created_at, c.name
                   FROM products p JOIN categories c ON c.id = p.category_id WHERE p.id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Image, &p.CreatedAt, &p.CategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM products p` + where
	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	args = append(args, pageSize, (page-1)*pageSize)
	listQuery := fmt.Sprintf(
		`SELECT p.id, p.category_id, p.name, p.price, p.image, p.created_at, c.name
         FROM products p JOIN categories c ON c.id = p.category_id%s
         ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.storage.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Image, &p.CreatedAt, &p.CategoryName); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) error {
	const query = `UPDATE products SET category_id=$1, name=$2, price=$3, image=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, product.CategoryID, product.Name, product.Price, product.Image, product.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	const query = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	c := model.Category{Name: name}
	if err := r.storage.pool.QueryRow(ctx, query, name).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, name string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE categories SET name=$1 WHERE id=$2`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
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
