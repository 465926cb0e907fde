package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/notes/internal/adapters/handler/http"
	repo "github.com/vncsmyrnk/notes/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/notes/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("Warning: JWT_SECRET not set")
	}

	userRepo := repo.NewUserRepository(db)
	noteRepo := repo.NewNoteRepository(db)

	tokenSvc := services.NewTokenService([]byte(secret))
	authSvc := services.NewAuthService(userRepo, tokenSvc)
	userSvc := services.NewUserService(userRepo)
	noteSvc := services.NewNoteService(noteRepo)

	authHandler := http.NewAuthHandler(authSvc, tokenSvc)
	noteHandler := http.NewNoteHandler(noteSvc)
	handler := http.NewHandler(authHandler, noteHandler, tokenSvc, userSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
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
