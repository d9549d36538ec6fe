package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env). Todo tiene default razonable: el
// binario arranca sin configuración alguna.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
	Report  ReportConfig
	Chart   ChartConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// StorageConfig ubicación del archivo de datos (items + historial).
type StorageConfig struct {
	DataFile string
}

// LogConfig destino y nivel del log. La TUI es dueña de stdout, así que el
// log siempre va a archivo.
type LogConfig struct {
	File  string
	Level string // trace, debug, info, warn, error
}

// ReportConfig directorio de salida de los reportes PDF.
type ReportConfig struct {
	OutputDir string
}

// ChartConfig ventana del gráfico de movimientos.
type ChartConfig struct {
	WindowDays int
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde un archivo .env en el directorio actual). Las env vars tienen
// prioridad. Nombres esperados: APP_ENV, DATA_FILE, LOG_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "production"),
			Name: getString(v, "APP_NAME", "relojes"),
		},
		Storage: StorageConfig{
			DataFile: getString(v, "DATA_FILE", "inventario.json"),
		},
		Log: LogConfig{
			File:  getString(v, "LOG_FILE", "relojes.log"),
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Report: ReportConfig{
			OutputDir: getString(v, "REPORT_DIR", "."),
		},
		Chart: ChartConfig{
			WindowDays: getInt(v, "CHART_WINDOW_DAYS", 7),
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
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
