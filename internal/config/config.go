package config

import "os"

type Config struct {
	Port string

	// MySQL backend; when MySQLHost is empty the JSON-file store is used.
	MySQLHost     string
	MySQLPort     string
	MySQLUser     string
	MySQLPassword string
	MySQLDatabase string

	DataFile   string
	UploadsDir string

	RedisAddr     string
	RabbitMQURL   string
	OrderExchange string

	AdminEmail    string
	AdminPassword string
	JWTSecret     string
}

func Default() Config {
	return Config{
		Port:          "8080",
		MySQLPort:     "3306",
		DataFile:      "./data/store.json",
		UploadsDir:    "./uploads",
		OrderExchange: "order.exchange",
		AdminEmail:    "elbakkalybilal531@gmail.com",
		AdminPassword: "admin123",
		JWTSecret:     "foodie-meknes-dev-secret",
	}
}

func FromEnv() Config {
	c := Default()
	set(&c.Port, "PORT")
	set(&c.MySQLHost, "MYSQL_HOST")
	set(&c.MySQLPort, "MYSQL_PORT")
	set(&c.MySQLUser, "MYSQL_USER")
	set(&c.MySQLPassword, "MYSQL_PASSWORD")
	set(&c.MySQLDatabase, "MYSQL_DATABASE")
	set(&c.DataFile, "DATA_FILE")
	set(&c.UploadsDir, "UPLOADS_DIR")
	set(&c.RedisAddr, "REDIS_ADDR")
	set(&c.RabbitMQURL, "RABBITMQ_URL")
	set(&c.OrderExchange, "ORDER_EXCHANGE")
	set(&c.AdminEmail, "ADMIN_EMAIL")
	set(&c.AdminPassword, "ADMIN_PASSWORD")
	set(&c.JWTSecret, "JWT_SECRET")
	return c
}

func set(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
