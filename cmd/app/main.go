package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/denimstore/jeans-shop-backend/internal/admin"
	"github.com/denimstore/jeans-shop-backend/internal/config"
	"github.com/denimstore/jeans-shop-backend/internal/customer"
	"github.com/denimstore/jeans-shop-backend/internal/message"
	"github.com/denimstore/jeans-shop-backend/internal/order"
	"github.com/denimstore/jeans-shop-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ensureSchema(db)

	adminService := admin.NewService(admin.NewPostgresRepository(db))
	adminHandler := admin.NewHandler(adminService, cfg.JWTSecret)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := adminService.EnsureAccount(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("could not seed admin account: %v", err)
		}
	}

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	customerService := customer.NewService(customer.NewPostgresRepository(db))
	customerHandler := customer.NewHandler(customerService)

	messageHandler := message.NewHandler(message.NewService(message.NewPostgresRepository(db)))

	// order placement snapshots the product name and dedups the customer
	// by phone, so the order service gets both collaborators
	orderService := order.NewService(order.NewPostgresRepository(db), productService, customerService, cfg.StrictStatusFlow)
	orderHandler := order.NewHandler(orderService)

	// public storefront surface
	productHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	messageHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// everything registered past this point requires a valid admin token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	adminHandler.RegisterAdminRoutes(app)
	productHandler.RegisterAdminRoutes(app)
	orderHandler.RegisterAdminRoutes(app)
	customerHandler.RegisterAdminRoutes(app)
	messageHandler.RegisterAdminRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			description TEXT,
			image_url TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			product_name TEXT,
			customer_name TEXT,
			customer_phone TEXT,
			customer_address TEXT,
			status TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			name TEXT,
			phone TEXT NOT NULL UNIQUE,
			address TEXT,
			email TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			name TEXT,
			email TEXT,
			phone TEXT,
			message TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
