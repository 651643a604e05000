package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	invrepo "github.com/fekuna/omnipos-restaurant-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// InTx runs fn inside one transaction. The TxOps handed to fn carries an
// inventory ledger bound to the same transaction, so stock deductions commit
// or roll back together with the order writes.
func (r *PGRepository) InTx(ctx context.Context, fn func(tx order.TxOps) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	ops := &pgTxOps{tx: tx, PGLedger: invrepo.NewPGLedger(tx)}
	if err := fn(ops); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "commit tx")
}

func (r *PGRepository) GetBillingDetails(ctx context.Context, orderID int64) (*model.BillingDetails, error) {
	var bill model.BillingDetails
	headerQuery := `
        SELECT order_id, table_id, final_amount, total_tax, total_discount, status, order_date
        FROM orders
        WHERE order_id = $1
    `
	err := r.DB.GetContext(ctx, &bill, headerQuery, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get billing header for order %d", orderID)
	}

	itemsQuery := `
        SELECT oi.quantity, oi.unit_price_at_sale, COALESCE(mi.name, '') AS menu_item_name
        FROM orderitems oi
        LEFT JOIN menuitems mi ON mi.item_id = oi.menu_item_id
        WHERE oi.order_id = $1
        ORDER BY oi.order_item_id
    `
	bill.Items = []model.BillingItem{}
	if err := r.DB.SelectContext(ctx, &bill.Items, itemsQuery, orderID); err != nil {
		return nil, errors.Wrapf(err, "get billing items for order %d", orderID)
	}

	return &bill, nil
}

func (r *PGRepository) GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	var header struct {
		ID        int64             `db:"order_id"`
		Total     float64           `db:"final_amount"`
		Status    model.OrderStatus `db:"status"`
		CreatedAt sql.NullTime      `db:"order_date"`
	}
	headerQuery := `SELECT order_id, final_amount, status, order_date FROM orders WHERE order_id = $1`
	err := r.DB.GetContext(ctx, &header, headerQuery, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get order %d", orderID)
	}

	items := []model.OrderDetailsItem{}
	itemsQuery := `
        SELECT order_item_id, menu_item_id, quantity, unit_price_at_sale
        FROM orderitems
        WHERE order_id = $1
        ORDER BY order_item_id
    `
	if err := r.DB.SelectContext(ctx, &items, itemsQuery, orderID); err != nil {
		return nil, errors.Wrapf(err, "get items for order %d", orderID)
	}

	details := &model.OrderDetails{
		ID:     header.ID,
		Total:  header.Total,
		Status: header.Status,
		Items:  items,
	}
	if header.CreatedAt.Valid {
		details.CreatedAt = header.CreatedAt.Time
	}
	return details, nil
}

type pgTxOps struct {
	tx *sqlx.Tx
	*invrepo.PGLedger
}

func (t *pgTxOps) CreateOrder(ctx context.Context, o *model.Order) (int64, error) {
	status := o.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	var id int64
	query := `
        INSERT INTO orders (table_id, waiter_id, final_amount, total_tax, total_discount, status, payment_method, order_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING order_id
    `
	err := t.tx.QueryRowxContext(ctx, query,
		o.TableID, o.WaiterID, o.FinalAmount, o.TotalTax, o.TotalDiscount, status, o.PaymentMethod,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert order")
	}
	return id, nil
}

func (t *pgTxOps) CreateOrderItems(ctx context.Context, orderID int64, items []model.OrderItem) error {
	query := `
        INSERT INTO orderitems (order_id, menu_item_id, quantity, unit_price_at_sale)
        VALUES ($1, $2, $3, $4)
    `
	for _, item := range items {
		if _, err := t.tx.ExecContext(ctx, query, orderID, item.MenuItemID, item.Quantity, item.UnitPriceAtSale); err != nil {
			return errors.Wrapf(err, "insert order item for menu item %d", item.MenuItemID)
		}
	}
	return nil
}

func (t *pgTxOps) GetOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	query := `SELECT menu_item_id, quantity FROM orderitems WHERE order_id = $1 ORDER BY order_item_id`
	if err := sqlx.SelectContext(ctx, t.tx, &items, query, orderID); err != nil {
		return nil, errors.Wrapf(err, "get items for order %d", orderID)
	}
	return items, nil
}

func (t *pgTxOps) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, paymentMethod *string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if paymentMethod != nil && status == model.OrderStatusPaid {
		res, err = t.tx.ExecContext(ctx,
			`UPDATE orders SET status = $2, payment_method = $3 WHERE order_id = $1`,
			orderID, status, *paymentMethod)
	} else {
		res, err = t.tx.ExecContext(ctx,
			`UPDATE orders SET status = $2 WHERE order_id = $1`,
			orderID, status)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "update status of order %d", orderID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}
