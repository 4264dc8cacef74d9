package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the catalog and parameters schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ITEMS (menu items and toppings)
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS items (
			id SERIAL PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			unit_price NUMERIC(12,4) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// OPTION GROUPS
	// -------------------------------
	groupsSQL := `
		CREATE TABLE IF NOT EXISTS option_groups (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(30) NOT NULL,
			min_pick INT NOT NULL DEFAULT 0,
			max_pick INT NOT NULL DEFAULT 0,
			required BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, groupsSQL); err != nil {
		return err
	}

	// -------------------------------
	// GROUP MEMBERSHIP
	// -------------------------------
	linksSQL := `
		CREATE TABLE IF NOT EXISTS item_option_groups (
			item_id INT NOT NULL REFERENCES items(id),
			group_id INT NOT NULL REFERENCES option_groups(id),
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (item_id, group_id)
		);

		CREATE TABLE IF NOT EXISTS option_group_items (
			group_id INT NOT NULL REFERENCES option_groups(id),
			item_id INT NOT NULL REFERENCES items(id),
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (group_id, item_id)
		);
	`
	if _, err := db.Exec(ctx, linksSQL); err != nil {
		return err
	}

	// -------------------------------
	// OPERATING PARAMETERS
	// -------------------------------
	paramsSQL := `
		CREATE TABLE IF NOT EXISTS parameters (
			code VARCHAR(30) PRIMARY KEY,
			value VARCHAR(255) NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, paramsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
