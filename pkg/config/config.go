package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Output  OutputConfig
	Report  ReportConfig
	HTTP    HTTPConfig
	DB      DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DatasetConfig origen del dataset.
type DatasetConfig struct {
	Source    string // csv | postgres
	Path      string // ruta al CSV
	Encoding  string // utf-8 | latin1 | windows-1252
	Delimiter string // un solo carácter; vacío = ','
	Table     string // tabla de origen cuando Source = postgres
}

// OutputConfig destino de gráficos y PDF.
type OutputConfig struct {
	Dir         string
	ChartFormat string // png | svg
	ChartWidth  int
	ChartHeight int
	PDF         bool
	Quiet       bool // no imprimir tablas por consola
}

// ReportConfig parámetros de las agregaciones.
type ReportConfig struct {
	PreviewRows int // filas del preview (df.head())
	TopDefects  int // N del top/bottom de tasa de defectos
}

// HTTPConfig configuración del visor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL (solo lectura del dataset).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Flags asociados a claves de configuración. Un flag solo gana sobre env/archivo
// cuando se pasa explícitamente en la línea de comandos.
var flagKeys = map[string]string{
	"data":     "SCA_DATA_PATH",
	"source":   "SCA_SOURCE",
	"encoding": "SCA_CSV_ENCODING",
	"out":      "SCA_OUTPUT_DIR",
	"format":   "SCA_CHART_FORMAT",
	"pdf":      "SCA_PDF",
	"quiet":    "SCA_QUIET",
	"port":     "HTTP_PORT",
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SCA_DATA_PATH, HTTP_PORT, etc.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags igual que Load pero además enlaza los flags conocidos de fs
// (--data, --out, --format, ...) con sus claves de configuración.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: enlazar flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "supply-chain-analytics"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Dataset: DatasetConfig{
			Source:    strings.ToLower(getString(v, "SCA_SOURCE", "csv")),
			Path:      getString(v, "SCA_DATA_PATH", "data/SCA.csv"),
			Encoding:  strings.ToLower(getString(v, "SCA_CSV_ENCODING", "utf-8")),
			Delimiter: getString(v, "SCA_CSV_DELIMITER", ","),
			Table:     getString(v, "SCA_DB_TABLE", "supply_chain_records"),
		},
		Output: OutputConfig{
			Dir:         getString(v, "SCA_OUTPUT_DIR", "out"),
			ChartFormat: strings.ToLower(getString(v, "SCA_CHART_FORMAT", "png")),
			ChartWidth:  getInt(v, "SCA_CHART_WIDTH", 1024),
			ChartHeight: getInt(v, "SCA_CHART_HEIGHT", 600),
			PDF:         getBool(v, "SCA_PDF", false),
			Quiet:       getBool(v, "SCA_QUIET", false),
		},
		Report: ReportConfig{
			PreviewRows: getInt(v, "SCA_PREVIEW_ROWS", 5),
			TopDefects:  getInt(v, "SCA_TOP_DEFECTS", 3),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "supply_chain"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa los valores enumerados y los tamaños.
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case "csv", "postgres":
	default:
		return fmt.Errorf("config: SCA_SOURCE %q no soportado (csv|postgres)", c.Dataset.Source)
	}
	switch c.Dataset.Encoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1", "windows-1252":
	default:
		return fmt.Errorf("config: SCA_CSV_ENCODING %q no soportado", c.Dataset.Encoding)
	}
	if len([]rune(c.Dataset.Delimiter)) != 1 {
		return fmt.Errorf("config: SCA_CSV_DELIMITER debe ser un solo carácter")
	}
	switch c.Output.ChartFormat {
	case "png", "svg":
	default:
		return fmt.Errorf("config: SCA_CHART_FORMAT %q no soportado (png|svg)", c.Output.ChartFormat)
	}
	if c.Output.ChartWidth <= 0 || c.Output.ChartHeight <= 0 {
		return fmt.Errorf("config: tamaño de gráfico inválido %dx%d", c.Output.ChartWidth, c.Output.ChartHeight)
	}
	if c.Report.PreviewRows < 0 || c.Report.TopDefects <= 0 {
		return fmt.Errorf("config: SCA_PREVIEW_ROWS y SCA_TOP_DEFECTS deben ser positivos")
	}
	return nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
