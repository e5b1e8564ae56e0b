package config

import "os"

type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	// StrictStatusFlow enables enforcement of the order status transition
	// table. Off by default: the admin selector may set any status.
	StrictStatusFlow bool
}

func Load() Config {
	addr := os.Getenv("JEANS_SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:             addr,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		StrictStatusFlow: os.Getenv("ORDER_STRICT_STATUS_FLOW") == "1",
	}
}
