package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tareffa/internal/domain/errors"
	"github.com/polkiloo/tareffa/internal/domain/model"
)

const orderColumns = `id, title, description, service_type, status, client_id, created_at, delivery_date, briefing_data`

func (r *orderRepository) Seed(ctx context.Context, orders []model.Order) error {
	const insertQuery = `INSERT INTO orders (` + orderColumns + `)
                         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                         ON CONFLICT (id) DO NOTHING`
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, order := range orders {
			briefing, err := encodeBriefing(order.BriefingData)
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, insertQuery, order.ID, order.Title, order.Description, order.ServiceType,
				order.Status, order.ClientID, order.CreatedAt, order.DeliveryDate, briefing)
			if err != nil {
				return fmt.Errorf("seed order %s: %w", order.ID, err)
			}
			if tag.RowsAffected() == 0 {
				continue
			}
			if err := insertChildren(ctx, tx, order); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const insertQuery = `INSERT INTO orders (` + orderColumns + `)
                         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	briefing, err := encodeBriefing(order.BriefingData)
	if err != nil {
		return nil, err
	}
	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertQuery, order.ID, order.Title, order.Description, order.ServiceType,
			order.Status, order.ClientID, order.CreatedAt, order.DeliveryDate, briefing); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return insertChildren(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	created := order
	created.Normalize()
	return &created, nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	orders := []model.Order{*order}
	if err := loadChildren(ctx, r.storage.pool, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query, args := buildListQuery(filter)
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(result) == 0 {
		return result, nil
	}
	if err := loadChildren(ctx, r.storage.pool, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *orderRepository) AddComment(ctx context.Context, id string, comment model.Comment) (*model.Order, error) {
	const insertQuery = `INSERT INTO comments (id, order_id, body, author_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockOrder(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insertQuery, comment.ID, id, comment.Text, comment.UserID, comment.CreatedAt); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *orderRepository) AddAttachment(ctx context.Context, id string, kind model.AttachmentKind, file model.Attachment) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockOrder(ctx, tx, id); err != nil {
			return err
		}
		return insertAttachment(ctx, tx, id, kind, file)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func lockOrder(ctx context.Context, tx pgx.Tx, id string) error {
	const query = `SELECT id FROM orders WHERE id=$1 FOR UPDATE`
	var locked string
	if err := tx.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}

func buildListQuery(filter model.OrderFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.ClientID != "" {
		add("client_id = $%d", filter.ClientID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.ServiceType != "" {
		add("service_type = $%d", filter.ServiceType)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, search)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(position(lower($%d) in lower(title)) > 0 OR position(lower($%d) in lower(description)) > 0)", n, n))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	return query, args
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order    model.Order
		delivery *time.Time
		briefing []byte
	)
	if err := row.Scan(&order.ID, &order.Title, &order.Description, &order.ServiceType, &order.Status,
		&order.ClientID, &order.CreatedAt, &delivery, &briefing); err != nil {
		return nil, err
	}
	order.DeliveryDate = delivery
	if len(briefing) > 0 {
		if err := json.Unmarshal(briefing, &order.BriefingData); err != nil {
			return nil, fmt.Errorf("decode briefing: %w", err)
		}
	}
	order.Normalize()
	return &order, nil
}

func encodeBriefing(data map[string]any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode briefing: %w", err)
	}
	return encoded, nil
}

func insertChildren(ctx context.Context, q querier, order model.Order) error {
	for _, file := range order.Files {
		if err := insertAttachment(ctx, q, order.ID, model.AttachmentReference, file); err != nil {
			return err
		}
	}
	for _, file := range order.DeliveryFiles {
		if err := insertAttachment(ctx, q, order.ID, model.AttachmentDelivery, file); err != nil {
			return err
		}
	}
	const insertComment = `INSERT INTO comments (id, order_id, body, author_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	for _, comment := range order.AdminComments {
		if _, err := q.Exec(ctx, insertComment, comment.ID, order.ID, comment.Text, comment.UserID, comment.CreatedAt); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
	}
	return nil
}

func insertAttachment(ctx context.Context, q querier, orderID string, kind model.AttachmentKind, file model.Attachment) error {
	const query = `INSERT INTO attachments (id, order_id, kind, name, url, size, media_type, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := q.Exec(ctx, query, file.ID, orderID, kind, file.Name, file.URL, file.Size, file.Type, file.CreatedAt); err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// loadChildren fills attachments and comments of orders in place, preserving insertion order.
func loadChildren(ctx context.Context, q querier, orders []model.Order) error {
	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	const attachmentsQuery = `SELECT order_id, id, kind, name, url, size, media_type, created_at
                              FROM attachments WHERE order_id = ANY($1) ORDER BY seq`
	rows, err := q.Query(ctx, attachmentsQuery, ids)
	if err != nil {
		return fmt.Errorf("load attachments: %w", err)
	}
	for rows.Next() {
		var (
			orderID string
			kind    model.AttachmentKind
			file    model.Attachment
		)
		if err := rows.Scan(&orderID, &file.ID, &kind, &file.Name, &file.URL, &file.Size, &file.Type, &file.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		i, ok := index[orderID]
		if !ok {
			continue
		}
		if kind == model.AttachmentDelivery {
			orders[i].DeliveryFiles = append(orders[i].DeliveryFiles, file)
		} else {
			orders[i].Files = append(orders[i].Files, file)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	const commentsQuery = `SELECT order_id, id, body, author_id, created_at
                           FROM comments WHERE order_id = ANY($1) ORDER BY seq`
	rows, err = q.Query(ctx, commentsQuery, ids)
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			orderID string
			comment model.Comment
		)
		if err := rows.Scan(&orderID, &comment.ID, &comment.Text, &comment.UserID, &comment.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].AdminComments = append(orders[i].AdminComments, comment)
		}
	}
	return rows.Err()
}
