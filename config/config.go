package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Environment wiring for the storefront binaries. Every knob has a default
// that works against the local compose stack.

const (
	defaultOrdersTopic  = "orders"
	defaultHTTPPort     = "8080"
	defaultCartTTLHours = 24
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + envOr("DB_HOST", "localhost") +
		" port=" + envOr("DB_PORT", "5432") +
		" user=" + envOr("DB_USER", "palace") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + envOr("DB_NAME", "palace") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("storefront: failed to open postgres:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("storefront: failed to ping postgres:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: envOr("REDIS_HOST", "localhost") + ":" + envOr("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("storefront: failed to connect to redis:", err)
	}

	return client
}

// OrdersTopic names the Kafka topic carrying order_placed events from the
// storefront to the popularity worker.
func OrdersTopic() string {
	return envOr("ORDERS_TOPIC", defaultOrdersTopic)
}

func NewKafkaReader(groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{envOr("KAFKA_BROKER", "localhost:9092")},
		Topic:   OrdersTopic(),
		GroupID: groupID,
	})
}

func NewKafkaWriter() *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(envOr("KAFKA_BROKER", "localhost:9092")),
		Topic:    OrdersTopic(),
		Balancer: &kafka.LeastBytes{},
	}
}

// CartArchiveTTL bounds how long an abandoned session cart survives in Redis.
// Unparseable or non-positive values fall back to the default.
func CartArchiveTTL() time.Duration {
	hours, err := strconv.Atoi(envOr("CART_TTL_HOURS", strconv.Itoa(defaultCartTTLHours)))
	if err != nil || hours <= 0 {
		hours = defaultCartTTLHours
	}
	return time.Duration(hours) * time.Hour
}

func HTTPAddr() string {
	return ":" + envOr("PORT", defaultHTTPPort)
}

// PublicBaseURL prefixes the collection pickup link encoded in QR codes.
func PublicBaseURL() string {
	return os.Getenv("PUBLIC_BASE_URL")
}
