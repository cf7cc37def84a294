package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type ServerConfig struct {
	Address string `json:"address" yaml:"address"`
}

type SecurityConfig struct {
	MaxBodySize int64 `json:"maxBodySize" yaml:"maxBodySize"` // 单位：字节
	BcryptCost  int   `json:"bcryptCost" yaml:"bcryptCost"`
}

type CORSConfig struct {
	AllowOrigins     []string      `json:"allowOrigins" yaml:"allowOrigins"` // "*" 表示任意来源
	AllowMethods     []string      `json:"allowMethods" yaml:"allowMethods"`
	AllowHeaders     []string      `json:"allowHeaders" yaml:"allowHeaders"`
	ExposeHeaders    []string      `json:"exposeHeaders" yaml:"exposeHeaders"`
	AllowCredentials bool          `json:"allowCredentials" yaml:"allowCredentials"`
	MaxAge           time.Duration `json:"maxAge" yaml:"maxAge"`
	TrustedDomains   []string      `json:"trustedDomains" yaml:"trustedDomains"`
}

type JWTAuthConfig struct {
	Secret         string        `json:"secret" yaml:"secret"`
	ExpireDuration time.Duration `json:"expireDuration" yaml:"expireDuration"`
	Issuer         string        `json:"issuer" yaml:"issuer"`
	SigningMethod  string        `json:"signingMethod" yaml:"signingMethod"`
	Realm          string        `json:"realm" yaml:"realm"`
	// ProtectResources 为 true 时 books/cart/service-requests 需要携带令牌
	ProtectResources bool `json:"protectResources" yaml:"protectResources"`
}

type MiddlewareConfig struct {
	Security SecurityConfig `json:"security" yaml:"security"`
	JWT      JWTAuthConfig  `json:"jwt" yaml:"jwt"`
	CORS     CORSConfig     `json:"cors" yaml:"cors"`
}

type DatabaseConfig struct {
	Driver          string        `json:"driver" yaml:"driver"` // mysql | postgres | sqlite
	DSN             string        `json:"dsn" yaml:"dsn"`       // 非空时直接使用，忽略下面的连接参数
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	Username        string        `json:"username" yaml:"username"`
	Password        string        `json:"password" yaml:"password"`
	DBName          string        `json:"dbname" yaml:"dbname"`
	UseUnixSock     bool          `json:"useUnixSock" yaml:"useUnixSock"`
	MinPoolSize     int           `json:"minPoolSize" yaml:"minPoolSize"`
	MaxPoolSize     int           `json:"maxPoolSize" yaml:"maxPoolSize"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	LogLevel        string        `json:"logLevel" yaml:"logLevel"` // GORM日志级别
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	Database   DatabaseConfig   `json:"database" yaml:"database"`
	Middleware MiddlewareConfig `json:"middleware" yaml:"middleware"`
	Log        LogConfig        `json:"log" yaml:"log"`
	Env        string           `json:"env" yaml:"env"`
}

// Default 返回内置默认配置的副本
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address: ":8000",
		},
		Database: DatabaseConfig{
			Driver:          DriverMySQL,
			Host:            "localhost",
			Port:            3306,
			Username:        "root",
			Password:        "root",
			DBName:          "book_hub",
			MinPoolSize:     5,
			MaxPoolSize:     50,
			ConnMaxLifetime: time.Hour,
			LogLevel:        "warn",
		},
		Middleware: MiddlewareConfig{
			Security: SecurityConfig{
				MaxBodySize: 10 << 20, // 10MB
				BcryptCost:  10,
			},
			JWT: JWTAuthConfig{
				Secret:         "dev-secret-change-me-in-production",
				ExpireDuration: 30 * time.Minute,
				Issuer:         "book-hub",
				SigningMethod:  "HS256",
				Realm:          "book-hub",
			},
			CORS: CORSConfig{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
				ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Env: "development",
	}
}

// IsProd 判断当前是否生产环境
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Load 加载配置（优先级：环境变量 > 配置文件 > 默认值）
func Load() *Config {
	config := Default()

	if configPath := getConfigPath(); configPath != "" {
		if err := loadFromFile(&config, configPath); err != nil {
			hlog.Warnf("Failed to load config file %s: %v", configPath, err)
		}
	}

	loadFromEnv(&config)

	return &config
}

func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	dirs := []string{".", "..", "/etc/book-hub"}
	names := []string{"config.json", "config.yaml", "config.yml"}
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// loadFromFile 按扩展名选择 JSON 或 YAML 解码
func loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)
	default:
		return json.Unmarshal(data, config)
	}
}

func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		config.Server.Address = v
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		config.Env = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Middleware.Security.MaxBodySize = size
		}
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.Middleware.Security.BcryptCost = cost
		}
	}

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		config.Middleware.CORS.AllowOrigins = splitEnvList(v)
	}

	/****** JWT ******/
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Middleware.JWT.Secret = v
	}

	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			config.Middleware.JWT.ExpireDuration = duration
		} else {
			hlog.Warnf("Invalid JWT_EXPIRATION format: %v", err)
		}
	}

	if v := os.Getenv("JWT_ISSUER"); v != "" {
		config.Middleware.JWT.Issuer = v
	}

	if v := os.Getenv("JWT_ALGORITHM"); v != "" {
		algorithm := strings.ToLower(strings.ReplaceAll(v, " ", ""))

		validAlgorithms := map[string]bool{
			"hs256": true,
			"hs384": true,
			"hs512": true,
		}

		if validAlgorithms[algorithm] {
			config.Middleware.JWT.SigningMethod = strings.ToUpper(algorithm)
		} else {
			hlog.Warnf("Unsupported JWT algorithm: %s", v)
		}
	}

	if v := os.Getenv("JWT_PROTECT_RESOURCES"); v != "" {
		config.Middleware.JWT.ProtectResources = parseBool(v)
	}

	// 数据库配置
	if v := os.Getenv("DB_DRIVER"); v != "" {
		config.Database.Driver = strings.ToLower(v)
	}

	if v := os.Getenv("DB_DSN"); v != "" {
		config.Database.DSN = v
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}

	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Database.Port = port
		}
	}

	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.Username = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}

	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}

	if v := os.Getenv("DB_SOCKET"); v != "" {
		config.Database.UseUnixSock = parseBool(v)
	}

	if v := os.Getenv("DB_MIN_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MinPoolSize = size
		}
	}

	if v := os.Getenv("DB_MAX_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MaxPoolSize = size
		}
	}

	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		config.Database.LogLevel = strings.ToLower(v)
	}
}

// 分割环境变量列表（支持逗号分隔的字符串）
func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(value string) bool {
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// Dialector 根据驱动类型构造 GORM 方言
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.Database.Driver {
	case DriverMySQL, "":
		return mysql.Open(c.mysqlDSN()), nil
	case DriverPostgres:
		return postgres.Open(c.postgresDSN()), nil
	case DriverSQLite:
		dsn := c.Database.DSN
		if dsn == "" {
			dsn = c.Database.DBName + ".db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

func (c *Config) mysqlDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	charsetParam := "charset=utf8mb4&parseTime=True&loc=Local"

	if c.Database.UseUnixSock {
		return fmt.Sprintf("%s:%s@unix(%s)/%s?%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host, // 这里host存储的是socket路径
			c.Database.DBName,
			charsetParam)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.Database.Username,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		charsetParam)
}

func (c *Config) postgresDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.Username,
		c.Database.Password,
		c.Database.DBName)
}

// GormLogger 将配置的日志级别映射为 GORM logger
func (c *Config) GormLogger() logger.Interface {
	switch c.Database.LogLevel {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}

func (c *Config) InitDB() (*gorm.DB, error) {
	dialector, err := c.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         c.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxIdleConns(c.Database.MinPoolSize)
	sqlDB.SetMaxOpenConns(c.Database.MaxPoolSize)
	sqlDB.SetConnMaxLifetime(c.Database.ConnMaxLifetime)

	return db, nil
}

// HlogLevel 将 log.level 映射为 hlog 级别，未知值按 info 处理
func (c *Config) HlogLevel() hlog.Level {
	switch c.Log.Level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
