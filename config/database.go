package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"p9e.in/treeflow/logging"
)

// DSN builds the driver connection string. DB_DSN, when set, wins.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.DBDriver {
	case DriverSQLServer:
		port := c.DBPort
		if port == 0 {
			port = 1433
		}
		u := &url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(c.DBUser, c.DBPassword),
			Host:   fmt.Sprintf("%s:%d", c.DBServer, port),
		}
		q := url.Values{}
		q.Set("database", c.DBDatabase)
		q.Set("encrypt", "disable")
		q.Set("TrustServerCertificate", "true")
		u.RawQuery = q.Encode()
		return u.String()
	case DriverMySQL:
		port := c.DBPort
		if port == 0 {
			port = 3306
		}
		mc := gomysql.NewConfig()
		mc.User = c.DBUser
		mc.Passwd = c.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.DBServer, strconv.Itoa(port))
		mc.DBName = c.DBDatabase
		mc.Params = map[string]string{"charset": "utf8mb4"}
		mc.ParseTime = true
		mc.Loc = time.Local
		mc.ClientFoundRows = true
		return mc.FormatDSN()
	case DriverSQLite:
		return c.DBDatabase
	default:
		port := c.DBPort
		if port == 0 {
			port = 5432
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			pgQuote(c.DBServer), port, pgQuote(c.DBUser), pgQuote(c.DBPassword), pgQuote(c.DBDatabase))
	}
}

var pgEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// pgQuote renders v as a single-quoted libpq keyword/value literal.
func pgQuote(v string) string {
	return "'" + pgEscaper.Replace(v) + "'"
}

func (c *Config) dialector() gorm.Dialector {
	dsn := c.DSN()
	switch c.DBDriver {
	case DriverSQLServer:
		return sqlserver.Open(dsn)
	case DriverMySQL:
		return mysql.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}

// OpenDatabase connects, applies the pool bounds and pings once. A failed
// ping is returned so the caller can stop the process.
func OpenDatabase(ctx context.Context, c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(c.dialector(), &gorm.Config{
		Logger:         logging.GormLogger(c.LogLevel),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().Local() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.DBPoolMax)
	sqlDB.SetMaxIdleConns(c.DBPoolMin)
	sqlDB.SetConnMaxIdleTime(c.DBIdleTimeout)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", c.DBDriver, err)
	}

	logging.Info().
		Str("driver", c.DBDriver).
		Int("pool_max", c.DBPoolMax).
		Int("pool_min", c.DBPoolMin).
		Dur("idle_timeout", c.DBIdleTimeout).
		Msg("connected to database")

	if c.DBAutoMigrate {
		if err := AutoMigrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}
	return db, nil
}

// CloseDatabase releases the pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
