package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the global Postgres handle. A full DATABASE_URL wins;
// otherwise the DSN is assembled from DB_* variables, with a Cloud SQL
// unix socket when INSTANCE_CONNECTION_NAME is set.
func Connect() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = buildDSN()
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		panic(err)
	}

	log.Println("✅ Database connected successfully!")
}

func buildDSN() string {
	user := envOr("DB_USER", "postgres")
	pass := os.Getenv("DB_PASS")
	name := envOr("DB_NAME", "cardwise")

	if instance := os.Getenv("INSTANCE_CONNECTION_NAME"); instance != "" {
		log.Printf("Connecting to Cloud SQL via socket: %s", instance)
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
			instance, user, pass, name)
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	log.Printf("Connecting to PostgreSQL at %s:%s/%s", host, port, name)
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, pass, name, port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
