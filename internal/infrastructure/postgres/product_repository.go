package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, sku, price, category, active, deleted_at, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, sku, price, category, active, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.Price,
		product.Category, product.Active, product.DeletedAt, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no), o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene un producto por nombre, o nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return r.scanOne(query, name)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.Category,
		&p.Active, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update persiste los cambios de un producto, incluido su estado de borrado lógico.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, sku = $4, price = $5, category = $6,
		    active = $7, deleted_at = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.Price,
		product.Category, product.Active, product.DeletedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListWithTotalStock lista productos según su estado con la suma de stock de
// todos sus almacenes (cero si no tienen inventario).
func (r *ProductRepo) ListWithTotalStock(active bool) ([]repository.ProductWithStock, error) {
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.price, p.category,
		       p.active, p.deleted_at, p.created_at, p.updated_at,
		       COALESCE(SUM(i.current_stock), 0) AS total_stock
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		WHERE p.active = $1
		GROUP BY p.id
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, active)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithStock
	for rows.Next() {
		var row repository.ProductWithStock
		if err := rows.Scan(
			&row.Product.ID, &row.Product.Name, &row.Product.Description, &row.Product.SKU,
			&row.Product.Price, &row.Product.Category, &row.Product.Active, &row.Product.DeletedAt,
			&row.Product.CreatedAt, &row.Product.UpdatedAt, &row.TotalStock,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountActive cuenta productos activos.
func (r *ProductRepo) CountActive() (int64, error) {
	var count int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products WHERE active`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}
