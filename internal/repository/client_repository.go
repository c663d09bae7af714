package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lendcore/credit-engine/internal/domain"
)

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, email FROM clients ORDER BY id`
	return r.selectClients(ctx, query)
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT id, name, email FROM clients WHERE id = $1`

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, err
	}

	if err := attachCreditIDs(ctx, r.db, []*domain.Client{&client}); err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	// Email is not unique; resolve to the oldest matching row.
	query := `SELECT id, name, email FROM clients WHERE email = $1 ORDER BY id LIMIT 1`

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, email); err != nil {
		return nil, err
	}

	if err := attachCreditIDs(ctx, r.db, []*domain.Client{&client}); err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *clientRepository) SearchByName(ctx context.Context, name string) ([]*domain.Client, error) {
	query := `SELECT id, name, email FROM clients WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	return r.selectClients(ctx, query, name)
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (name, email) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowxContext(ctx, query, client.Name, client.Email).Scan(&client.ID)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `UPDATE clients SET name = $2, email = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, client.ID, client.Name, client.Email)
	return err
}

func (r *clientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteByID removes the client and, child-first, every owned credit and
// repayment in one transaction. The schema's ON DELETE CASCADE would cover
// this too; deleting explicitly keeps the ownership chain visible and works
// on stores without cascade support.
func (r *clientRepository) DeleteByID(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM repayments WHERE credit_id IN (SELECT id FROM credits WHERE client_id = $1)`, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM credits WHERE client_id = $1`, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *clientRepository) selectClients(ctx context.Context, query string, args ...interface{}) ([]*domain.Client, error) {
	var clients []*domain.Client
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, err
	}

	if err := attachCreditIDs(ctx, r.db, clients); err != nil {
		return nil, err
	}

	return clients, nil
}

func attachCreditIDs(ctx context.Context, db *sqlx.DB, clients []*domain.Client) error {
	if len(clients) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Client, len(clients))
	ids := make([]int64, 0, len(clients))
	for _, client := range clients {
		byID[client.ID] = client
		ids = append(ids, client.ID)
	}

	query := `SELECT id, client_id FROM credits WHERE client_id = ANY($1) ORDER BY id`

	var rows []struct {
		ID       int64 `db:"id"`
		ClientID int64 `db:"client_id"`
	}
	if err := db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return err
	}

	for _, row := range rows {
		if client, ok := byID[row.ClientID]; ok {
			client.Credits = append(client.Credits, &domain.Credit{ID: row.ID, ClientID: row.ClientID})
		}
	}

	return nil
}
