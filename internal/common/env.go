package common

import (
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	AppEnv      string // environment (development/production)
	Addr        string // listen address
	DataDir     string // file store root (documents + logs/)
	StoreDriver string // "file" or "sqlite"
	SQLitePath  string // sqlite database path, used when StoreDriver=sqlite
	CatalogPath string // optional pipeline catalog YAML override
	LogPath     string // server log file path
	RandSeed    int64  // simulator seed, 0 means time-based
}

var config Config

func GetConfig() Config {
	return config
}

func InitConf() {
	seed, _ := strconv.ParseInt(getEnv("RAND_SEED", "0"), 10, 64)

	config = Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Addr:        getEnv("ADDR", ":5000"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		StoreDriver: getEnv("STORE_DRIVER", "file"),
		SQLitePath:  getEnv("SQLITE_PATH", "./data/simci.db"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		LogPath:     getEnv("LOG_PATH", "./logs/app.log"),
		RandSeed:    seed,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
