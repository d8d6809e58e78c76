package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para el carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// AddOrIncrement inserta la línea o incrementa la cantidad de la existente en
// una sola sentencia. El UNIQUE (user_id, product_id) garantiza que dos adds
// concurrentes al mismo par terminan en una sola fila con la suma.
func (r *CartRepo) AddOrIncrement(userID, productID string, quantity int) (*entity.CartedProduct, error) {
	query := `
		INSERT INTO carted_products (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, now(), now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = carted_products.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, user_id, product_id, quantity, created_at, updated_at`
	var cp entity.CartedProduct
	err := r.q.QueryRow(context.Background(), query, userID, productID, quantity).Scan(
		&cp.ID, &cp.UserID, &cp.ProductID, &cp.Quantity, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		// El producto pudo borrarse entre el chequeo del use case y este insert.
		if isForeignKeyViolation(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("upsert carted product: %w", err)
	}
	return &cp, nil
}

// UpdateQuantity fija la cantidad de una línea, solo si pertenece a userID.
// No distingue "no existe" de "es de otro usuario": ambos son ErrNotFound,
// así no se filtra la existencia de filas ajenas.
func (r *CartRepo) UpdateQuantity(userID, cartedID string, quantity int) (*entity.CartedProduct, error) {
	query := `
		UPDATE carted_products SET quantity = $3, updated_at = now()
		WHERE id = $2 AND user_id = $1
		RETURNING id, user_id, product_id, quantity, created_at, updated_at`
	var cp entity.CartedProduct
	err := r.q.QueryRow(context.Background(), query, userID, cartedID, quantity).Scan(
		&cp.ID, &cp.UserID, &cp.ProductID, &cp.Quantity, &cp.CreatedAt, &cp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update carted product: %w", err)
	}
	return &cp, nil
}

// Remove borra una línea, solo si pertenece a userID. Misma política que
// UpdateQuantity para filas ausentes o ajenas.
func (r *CartRepo) Remove(userID, cartedID string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM carted_products WHERE id = $2 AND user_id = $1`, userID, cartedID)
	if err != nil {
		return fmt.Errorf("delete carted product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser devuelve las líneas del carrito con su producto, en orden de inserción.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT cp.id, cp.quantity,
		       p.id, p.name, p.description, p.price, p.inventory, p.category, p.created_at, p.updated_at
		FROM carted_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.user_id = $1
		ORDER BY cp.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	var items []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(
			&it.CartedID, &it.Quantity,
			&it.Product.ID, &it.Product.Name, &it.Product.Description, &it.Product.Price,
			&it.Product.Inventory, &it.Product.Category, &it.Product.CreatedAt, &it.Product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
