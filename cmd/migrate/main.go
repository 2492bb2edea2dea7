package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"github.com/nutriquery/backend/config"
)

// Standalone migration runner for deployments. Applies the .sql files
// in the migrations directory in name order, each inside its own
// transaction, and records applied files so reruns are no-ops.
func main() {
	dir := flag.String("dir", "migrations", "directory containing .sql migration files")
	flag.Parse()

	// DATABASE_URL wins when set; otherwise the DSN is assembled from
	// the same DB_* variables the API server reads.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		dsn = cfg.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		log.Fatalf("failed to create migrations table: %v", err)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = $1", name).Scan(&count); err != nil {
			log.Fatalf("failed to check migration status: %v", err)
		}
		if count > 0 {
			log.Printf("Skipping migration %s (already applied)", name)
			continue
		}

		content, err := os.ReadFile(filepath.Join(*dir, name))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("failed to start transaction: %v", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Fatalf("failed to apply migration %s: %v", name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (name) VALUES ($1)", name); err != nil {
			tx.Rollback()
			log.Fatalf("failed to record migration %s: %v", name, err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit migration %s: %v", name, err)
		}

		log.Printf("Applied migration %s", name)
	}

	log.Println("All migrations applied")
}
