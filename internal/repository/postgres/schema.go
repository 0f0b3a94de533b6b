package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// schemaStatements is the front-desk schema bootstrap. Every statement is
// CREATE TABLE IF NOT EXISTS so startup is safe against a database that
// already holds data; nothing here drops or alters. The patients, doctors
// and admin tables are created for compatibility even though no endpoint
// touches them yet.
var schemaStatements = []struct {
	table string
	ddl   string
}{
	{"patients", `
		CREATE TABLE IF NOT EXISTS patients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			contact VARCHAR(20)
		)`},
	{"doctors", `
		CREATE TABLE IF NOT EXISTS doctors (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50),
			email VARCHAR(50)
		)`},
	{"appointments", `
		CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			patient_name VARCHAR(50) NOT NULL,
			contact VARCHAR(20),
			doctor VARCHAR(50) NOT NULL,
			department VARCHAR(50),
			date DATE NOT NULL
		)`},
	{"queue", `
		CREATE TABLE IF NOT EXISTS queue (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50),
			contact VARCHAR(20),
			department VARCHAR(50),
			doctor_id INT,
			token INT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"admin", `
		CREATE TABLE IF NOT EXISTS admin (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE,
			password VARCHAR(50)
		)`},
}

// EnsureSchema creates the five front-desk tables if they are absent. It is
// run on every process start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, s := range schemaStatements {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("failed to ensure %s table: %w", s.table, err)
		}
		log.Info().Str("table", s.table).Msg("table ready")
	}
	return nil
}
