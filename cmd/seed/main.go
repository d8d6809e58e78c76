// seed pobla la base con datos de demostración: cuatro usuarios (uno admin)
// y cinco productos. Es idempotente: los inserts usan ON CONFLICT DO NOTHING,
// así se puede correr sobre una base ya poblada.
//
// Uso: go run ./cmd/seed (lee la misma configuración que cmd/api)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
)

type seedUser struct {
	email    string
	password string
	address  string
	isAdmin  bool
}

type seedProduct struct {
	name        string
	price       string
	description string
	inventory   int
	category    string
}

var users = []seedUser{
	{"joe@gmail.com", "j_pop_2024!", "Boston", true},
	{"shane@gmail.com", "s_pop_2024!", "Philadelphia", false},
	{"mark@gmail.com", "m_pop_2024!", "New Orleans", false},
	{"ari@gmail.com", "a_pop_2024!", "Los Angeles", false},
}

var products = []seedProduct{
	{"hat", "15.00", "Fancy Hat", 25, "apparel"},
	{"phone", "200.00", "Smart Phone", 50, "electronics"},
	{"shoes", "75.00", "Athletic Shoes", 30, "apparel"},
	{"laptop", "500.00", "Gaming Laptop", 15, "electronics"},
	{"lamp", "25.00", "Table Lamp", 60, "home"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones: %v\n", err)
		os.Exit(1)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password de %s: %v\n", u.email, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, address, payment_info, is_admin, created_at, updated_at)
			VALUES ($1, $2, $3, $4, '', $5, now(), now())
			ON CONFLICT (email) DO NOTHING`,
			uuid.New().String(), u.email, string(hash), u.address, u.isAdmin,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
	}

	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "precio de %s: %v\n", p.name, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO products (id, name, description, price, inventory, category, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), p.name, p.description, price, p.inventory, p.category,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %s: %v\n", p.name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seed listo: %d usuarios y %d productos\n", len(users), len(products))
}
