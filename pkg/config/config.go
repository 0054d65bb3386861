package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Export  ExportConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig configuración del almacén de documentos JSON local.
type StoreConfig struct {
	DataDir string // directorio donde viven company.json, settings.json, products.json, invoices.json
}

// ExportConfig configuración de exportación de documentos.
// Scale < 2 produce salida borrosa en impresión; el exportador lo eleva al mínimo.
type ExportConfig struct {
	Scale       float64 // factor de sobremuestreo del raster (mínimo 2, por defecto 3)
	JPEGQuality int     // calidad JPEG 1-100 (por defecto 90)
}

// BillingConfig valores por defecto de facturación para registros nuevos.
type BillingConfig struct {
	DefaultCurrency string // código ISO, por defecto USD
	DefaultTemplate string // id de plantilla, por defecto classic
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_DIR, EXPORT_SCALE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facturador"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			DataDir: getString(v, "DATA_DIR", "./data"),
		},
		Export: ExportConfig{
			Scale:       getFloat(v, "EXPORT_SCALE", 3),
			JPEGQuality: getInt(v, "EXPORT_JPEG_QUALITY", 90),
		},
		Billing: BillingConfig{
			DefaultCurrency: getString(v, "DEFAULT_CURRENCY", "USD"),
			DefaultTemplate: getString(v, "DEFAULT_TEMPLATE", "classic"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}
