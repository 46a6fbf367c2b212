package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host          string
	Port          int
	AllowOrigins  []string
	LogLevel      string
	LogFile       string
	CatalogFile   string
	ProductsSheet string
	StaticDir     string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8080"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          port,
		AllowOrigins:  origins,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       getenv("LOG_FILE", "logs/mostruario-service.log"),
		CatalogFile:   getenv("CATALOG_FILE", "data/catalogo-mostruario.xlsx"),
		ProductsSheet: getenv("PRODUCTS_SHEET", "PRODUTOS"),
		StaticDir:     getenv("STATIC_DIR", "static"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
