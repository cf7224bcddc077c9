package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line.
//
// Flags:
//
//	-a, --address       server address in format [host]:[port]
//	    --request-timeout request timeout (e.g., "30s", "1m")
//	    --shutdown-timeout graceful shutdown timeout
//	    --storage       provider implementation: memory | sqlite
//	-d, --dsn           sqlite DSN (in-memory only)
//	    --token-sign-key JWT verification key
//	    --token-issuer  expected JWT issuer
//	    --log-level     zerolog level
//	    --log-dir       directory for per-run log files
//	    --no-metrics    disable GET /metrics
//	-c, --config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout, shutdownTimeout time.Duration
	var storageProvider, dsn string
	var tokenSignKey, tokenIssuer string
	var logLevel, logDir string
	var noMetrics bool
	var jsonConfigPath string

	fs := pflag.NewFlagSet("posts-server", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&storageProvider, "storage", "", "Storage provider: memory or sqlite")
	fs.StringVarP(&dsn, "dsn", "d", "", "SQLite DSN (in-memory database only)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "JWT verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Expected JWT issuer")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logDir, "log-dir", "", "Directory for per-run log files")
	fs.BoolVar(&noMetrics, "no-metrics", false, "Disable the /metrics endpoint")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			Provider: storageProvider,
			DB: DB{
				DSN: dsn,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Log: Log{
			Level: logLevel,
			Dir:   logDir,
		},
		Metrics: Metrics{
			Disabled: noMetrics,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// address does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}
