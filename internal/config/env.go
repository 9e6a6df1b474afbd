package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Env carries everything the server needs at boot. Values come from
// configs/config.yaml when present, overridden by environment variables;
// the defaults below keep the binary runnable with neither.
type Env struct {
	AppAddr     string
	GinMode     string
	CORSOrigins []string

	DBUser string
	DBPass string
	DBHost string
	DBName string
}

// LoadEnv reads .env (if any), then the optional yaml config, then the
// environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.AutomaticEnv()

	v.SetDefault("app_addr", ":8080")
	v.SetDefault("gin_mode", "")
	v.SetDefault("cors_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})
	v.SetDefault("db_user", "root")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_host", "127.0.0.1:3306")
	v.SetDefault("db_name", "kts_books")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config: no config file, using env/defaults (%v)", err)
	}

	return Env{
		AppAddr:     v.GetString("app_addr"),
		GinMode:     v.GetString("gin_mode"),
		CORSOrigins: v.GetStringSlice("cors_origins"),
		DBUser:      v.GetString("db_user"),
		DBPass:      v.GetString("db_pass"),
		DBHost:      v.GetString("db_host"),
		DBName:      v.GetString("db_name"),
	}
}

// DSN builds the MySQL connection string.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPass, e.DBHost, e.DBName)
}
