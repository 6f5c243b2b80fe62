// seed crea las cuatro tablas del dashboard y las puebla con datos de ejemplo.
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL (o DB_HOST, DB_PORT, etc.) igual que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dashboard-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	image_url TEXT NOT NULL
);
-- customer_id es texto sin foreign key: las referencias colgantes se
-- toleran y las lecturas con join las descartan.
CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	customer_id TEXT NOT NULL,
	amount BIGINT NOT NULL,
	status TEXT NOT NULL,
	date DATE NOT NULL
);
CREATE TABLE IF NOT EXISTS revenue (
	month INT NOT NULL UNIQUE,
	revenue NUMERIC NOT NULL
);`

type seedCustomer struct {
	name     string
	email    string
	imageURL string
}

type seedInvoice struct {
	customer int // índice en customers
	amount   int64
	status   string
	date     string
}

var customers = []seedCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{0, 15795, entity.StatusPending, "2022-12-06"},
	{1, 20348, entity.StatusPending, "2022-11-14"},
	{4, 3040, entity.StatusPaid, "2022-10-29"},
	{3, 44800, entity.StatusPaid, "2023-09-10"},
	{5, 34577, entity.StatusPending, "2023-08-05"},
	{2, 54246, entity.StatusPending, "2023-07-16"},
	{0, 666, entity.StatusPending, "2023-06-27"},
	{3, 32545, entity.StatusPaid, "2023-06-09"},
	{4, 1250, entity.StatusPaid, "2023-06-17"},
	{5, 8546, entity.StatusPaid, "2023-06-07"},
	{1, 500, entity.StatusPaid, "2023-08-19"},
	{5, 8945, entity.StatusPaid, "2023-06-03"},
	{2, 1000, entity.StatusPaid, "2022-06-05"},
}

var revenue = []int64{2000, 1800, 2200, 2500, 2300, 3200, 3500, 3700, 2500, 2800, 3000, 4800}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear tablas: %v", err)
	}

	// Usuario demo. El password jamás se guarda en plano.
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "User", "user@nextmail.com", string(hash))
	if err != nil {
		fail("insertar usuario: %v", err)
	}

	customerIDs := make([]string, len(customers))
	for i, c := range customers {
		customerIDs[i] = uuid.New().String()
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)`,
			customerIDs[i], c.name, c.email, c.imageURL)
		if err != nil {
			fail("insertar cliente %q: %v", c.name, err)
		}
	}

	for _, inv := range invoices {
		date, err := time.Parse("2006-01-02", inv.date)
		if err != nil {
			fail("fecha de factura %q: %v", inv.date, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), customerIDs[inv.customer], inv.amount, inv.status, date)
		if err != nil {
			fail("insertar factura: %v", err)
		}
	}

	for month, amount := range revenue {
		_, err := pool.Exec(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue`,
			month+1, amount)
		if err != nil {
			fail("insertar revenue: %v", err)
		}
	}

	fmt.Printf("Seed completo: %d clientes, %d facturas, 12 meses de revenue\n",
		len(customers), len(invoices))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
