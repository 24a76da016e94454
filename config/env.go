package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultJWTSecret     = "change-me-in-production"
	defaultAppPort       = "3000"
	defaultAppEnv        = "local"
	defaultCurrency      = "USD"
	defaultSeedCatalog   = "true"
	defaultRateLimitMax  = "200"
	defaultRateLimitWind = "1m"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"JWT_SECRET":        defaultJWTSecret,
		"APP_PORT":          defaultAppPort,
		"APP_ENV":           defaultAppEnv,
		"DEFAULT_CURRENCY":  defaultCurrency,
		"SEED_CATALOG":      defaultSeedCatalog,
		"RATE_LIMIT_MAX":    defaultRateLimitMax,
		"RATE_LIMIT_WINDOW": defaultRateLimitWind,
	}
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// DefaultCurrency is applied to products and orders created without an
// explicit currency.
func DefaultCurrency() string {
	_ = Load()
	return get("DEFAULT_CURRENCY", defaultCurrency)
}

// SeedCatalog reports whether the sample watch catalogue should be seeded
// into an empty store at startup.
func SeedCatalog() bool {
	_ = Load()
	v := strings.ToLower(get("SEED_CATALOG", defaultSeedCatalog))
	return v == "true" || v == "1"
}

// RateLimitMax is the per-IP request cap applied by the rate limit middleware.
func RateLimitMax() int {
	_ = Load()
	n, err := strconv.Atoi(get("RATE_LIMIT_MAX", defaultRateLimitMax))
	if err != nil || n <= 0 {
		n, _ = strconv.Atoi(defaultRateLimitMax)
	}
	return n
}

// RateLimitWindow is the window over which RateLimitMax applies.
func RateLimitWindow() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("RATE_LIMIT_WINDOW", defaultRateLimitWind))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultRateLimitWind)
	}
	return d
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
