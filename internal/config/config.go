package config

import "os"

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider (Supabase)
	SupabaseURL        string
	SupabaseServiceKey string

	// Server
	Port        string
	CORSOrigins string

	// When true, video/ticket statuses may only leave PENDING; terminal
	// states stay terminal. Default preserves upstream last-write-wins.
	StrictStatusTransitions bool
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "tapaspot"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),

		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		StrictStatusTransitions: getEnv("STRICT_STATUS_TRANSITIONS", "false") == "true",
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
