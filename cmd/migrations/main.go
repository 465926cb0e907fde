package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const migrationsDir = "internal/adapters/repository/postgres/migrations"

// Applies every *.up.sql migration in lexical order, or a single migration
// when its name is passed as the first argument.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	var only string
	if len(os.Args) > 1 {
		only = os.Args[1]
	}

	files, err := migrationFiles(migrationsDir, only)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatal("no migration files found")
	}

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatal(err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("Failed to execute %s: %v", name, err)
		}
		fmt.Printf("Applied %s\n", name)
	}
}

func migrationFiles(basePath string, only string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		if only != "" && !strings.Contains(entry.Name(), only) {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	return files, nil
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
