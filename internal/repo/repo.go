package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"Takeoff/internal/calc/pricing"
)

// PriceRepository stores unit prices in the unit_prices table.
type PriceRepository struct {
	db     *sql.DB
	driver string
}

func NewPriceRepository(db *sql.DB, driver string) *PriceRepository {
	return &PriceRepository{db: db, driver: driver}
}

func (r *PriceRepository) Prices(ctx context.Context) (pricing.Table, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT material, unit_price FROM unit_prices")
	if err != nil {
		return nil, fmt.Errorf("query unit prices: %w", err)
	}
	defer rows.Close()

	table := pricing.Table{}
	for rows.Next() {
		var material string
		var price float64
		if err := rows.Scan(&material, &price); err != nil {
			return nil, fmt.Errorf("scan unit price: %w", err)
		}
		table[material] = price
	}
	return table, rows.Err()
}

func (r *PriceRepository) Upsert(ctx context.Context, material string, price float64) error {
	if err := (pricing.Table{material: price}).Validate(); err != nil {
		return err
	}
	query := `INSERT INTO unit_prices (material, unit_price, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (material) DO UPDATE
		SET unit_price = excluded.unit_price, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, r.rebind(query), material, price); err != nil {
		return fmt.Errorf("upsert price of %s: %w", material, err)
	}
	return nil
}

// rebind rewrites $N placeholders to ? for sqlite.
func (r *PriceRepository) rebind(query string) string {
	if r.driver != SQLite {
		return query
	}
	for i := 9; i >= 1; i-- {
		query = strings.ReplaceAll(query, "$"+strconv.Itoa(i), "?")
	}
	return query
}
