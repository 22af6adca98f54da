package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

type Config struct {
	Addr string

	DBDriver   Driver
	DBDSN      string
	SQLitePath string

	SessionSecret []byte
	SessionTTL    time.Duration
	CookieSecure  bool

	// Límite para POST de login/signup, por IP.
	AuthRatePerMin int
	AuthRateBurst  int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// DebugAuth habilita X-Debug-User-ID (solo dev).
	DebugAuth bool
}

// Load lee .env (si existe) y luego el entorno.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv construye la config solo desde variables de entorno.
func FromEnv() (*Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	driver, err := parseDriver(os.Getenv("DB_DRIVER"), dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverPostgres && dsn == "" {
		return nil, errors.New("DB_DSN is required when DB_DRIVER=postgres")
	}

	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if sqlitePath == "" {
		sqlitePath = "data/catcollector.db"
	}

	secret := []byte(os.Getenv("SESSION_SECRET"))
	if len(secret) == 0 {
		if driver != DriverMemory {
			return nil, errors.New("SESSION_SECRET is required with persistent storage")
		}
		// modo dev: las sesiones mueren con el proceso, igual que los datos
		secret = randomSecret()
	}

	ttlHours, err := loadInt("SESSION_TTL_HOURS", 24*14)
	if err != nil {
		return nil, err
	}
	ratePerMin, err := loadInt("AUTH_RATE_PER_MIN", 20)
	if err != nil {
		return nil, err
	}
	rateBurst, err := loadInt("AUTH_RATE_BURST", 5)
	if err != nil {
		return nil, err
	}
	readTimeout, err := loadInt("READ_TIMEOUT_SEC", 5)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := loadInt("WRITE_TIMEOUT_SEC", 10)
	if err != nil {
		return nil, err
	}
	cookieSecure, err := loadBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}
	debugAuth, err := loadBool("DEBUG_AUTH", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:           ":" + port,
		DBDriver:       driver,
		DBDSN:          dsn,
		SQLitePath:     sqlitePath,
		SessionSecret:  secret,
		SessionTTL:     time.Duration(ttlHours) * time.Hour,
		CookieSecure:   cookieSecure,
		AuthRatePerMin: ratePerMin,
		AuthRateBurst:  rateBurst,
		ReadTimeout:    time.Duration(readTimeout) * time.Second,
		WriteTimeout:   time.Duration(writeTimeout) * time.Second,
		DebugAuth:      debugAuth,
	}, nil
}

func parseDriver(raw, dsn string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		if dsn != "" {
			return DriverPostgres, nil
		}
		return DriverMemory, nil
	case DriverMemory:
		return DriverMemory, nil
	case DriverPostgres:
		return DriverPostgres, nil
	case DriverSQLite:
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unknown DB_DRIVER %q", raw)
	}
}

func loadInt(key string, defValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func loadBool(key string, defValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func randomSecret() []byte {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return []byte(hex.EncodeToString(b[:]))
}
