package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

const (
	opTimeout = 5 * time.Second

	orderColumns = `id, account_id, bought_date, travel_date, travel_time, contacts_name,
		document_type, contacts_document_number, train_number, coach_number,
		seat_class, seat_number, from_station, to_station, status, price`
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status int
	)
	err := row.Scan(
		&order.ID, &order.AccountID, &order.BoughtDate, &order.TravelDate, &order.TravelTime,
		&order.ContactsName, &order.DocumentType, &order.ContactsDocumentNumber,
		&order.TrainNumber, &order.CoachNumber, &order.SeatClass, &order.SeatNumber,
		&order.From, &order.To, &status, &order.Price,
	)
	order.Status = domain.OrderStatus(status)
	return order, err
}

func (r *orderRepository) Get(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error) {
	return r.list(ctx, "list orders by account",
		`SELECT `+orderColumns+` FROM orders WHERE account_id = $1 ORDER BY bought_date ASC, id ASC`, accountID)
}

func (r *orderRepository) ListByTravelDateAndTrain(ctx context.Context, travelDate, trainNumber string) ([]domain.Order, error) {
	return r.list(ctx, "list orders by travel date and train",
		`SELECT `+orderColumns+` FROM orders WHERE travel_date = $1 AND train_number = $2 ORDER BY bought_date ASC, id ASC`,
		travelDate, trainNumber)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, "list all orders", `SELECT `+orderColumns+` FROM orders ORDER BY bought_date ASC, id ASC`)
}

func (r *orderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,NOW())
		ON CONFLICT (id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			bought_date = EXCLUDED.bought_date,
			travel_date = EXCLUDED.travel_date,
			travel_time = EXCLUDED.travel_time,
			contacts_name = EXCLUDED.contacts_name,
			document_type = EXCLUDED.document_type,
			contacts_document_number = EXCLUDED.contacts_document_number,
			train_number = EXCLUDED.train_number,
			coach_number = EXCLUDED.coach_number,
			seat_class = EXCLUDED.seat_class,
			seat_number = EXCLUDED.seat_number,
			from_station = EXCLUDED.from_station,
			to_station = EXCLUDED.to_station,
			status = EXCLUDED.status,
			price = EXCLUDED.price,
			updated_at = NOW()
	`,
		order.ID, order.AccountID, order.BoughtDate, order.TravelDate, order.TravelTime,
		order.ContactsName, order.DocumentType, order.ContactsDocumentNumber,
		order.TrainNumber, order.CoachNumber, order.SeatClass, order.SeatNumber,
		order.From, order.To, int(order.Status), order.Price,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("upsert order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// list всегда возвращает не-nil слайс: у SQL-таблицы нет состояния "коллекция отсутствует".
func (r *orderRepository) list(ctx context.Context, operation, query string, args ...any) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
