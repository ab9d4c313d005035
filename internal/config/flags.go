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

// Flag names shared by the client and the server.
const (
	FlagConfig         = "config"
	FlagHashKey        = "hash-key"
	FlagRequestTimeout = "request-timeout"
	FlagLogLevel       = "log-level"
)

// Client flag names.
const (
	FlagServerURL      = "server"
	FlagIdentityToken  = "token"
	FlagLocalDriver    = "local-driver"
	FlagLocalPath      = "local-path"
	FlagLogFile        = "log-file"
	FlagPersistTimeout = "persist-timeout"
)

// Server flag names.
const (
	FlagAddress         = "address"
	FlagDatabaseDSN     = "database-dsn"
	FlagS3Bucket        = "s3-bucket"
	FlagS3Region        = "s3-region"
	FlagS3Endpoint      = "s3-endpoint"
	FlagS3Prefix        = "s3-prefix"
	FlagTokenSignKey    = "token-sign-key"
	FlagTokenIssuer     = "token-issuer"
	FlagShutdownTimeout = "shutdown-timeout"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterClientFlags defines the client's configuration flags on fs.
// Flags carry no defaults so that unset flags never shadow env or JSON
// values.
func RegisterClientFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagServerURL, "", "Remote vault service URL, e.g. http://localhost:8080")
	fs.String(FlagIdentityToken, "", "Identity token for google sessions")
	fs.String(FlagHashKey, "", "Save request integrity key")
	fs.String(FlagLocalDriver, "", "Local store driver: sqlite, file or memory")
	fs.String(FlagLocalPath, "", "Local store path")
	fs.Duration(FlagRequestTimeout, 0, "Remote request timeout (e.g. 15s)")
	fs.Duration(FlagPersistTimeout, 0, "Single save timeout (e.g. 10s)")
	fs.String(FlagLogLevel, "", "Log level")
	fs.String(FlagLogFile, "", "Log file path")
}

// RegisterServerFlags defines the server's configuration flags on fs.
func RegisterServerFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Net address host:port")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.StringP(FlagDatabaseDSN, "d", "", "Database DSN")
	fs.String(FlagS3Bucket, "", "S3 bucket for vault documents")
	fs.String(FlagS3Region, "", "S3 region")
	fs.String(FlagS3Endpoint, "", "S3 endpoint override")
	fs.String(FlagS3Prefix, "", "S3 object key prefix")
	fs.String(FlagTokenSignKey, "", "Token signing key")
	fs.String(FlagTokenIssuer, "", "Token issuer")
	fs.String(FlagHashKey, "", "Save request integrity key")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g. 30s)")
	fs.Duration(FlagShutdownTimeout, 0, "Graceful shutdown timeout (e.g. 10s)")
	fs.String(FlagLogLevel, "", "Log level")
}

// parseFlags reads every known flag present on fs into a StructuredConfig.
// Flags that were not registered on fs are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	r := flagReader{fs: fs}

	cfg := &StructuredConfig{
		App: App{
			IdentityToken: r.str(FlagIdentityToken),
			TokenSignKey:  r.str(FlagTokenSignKey),
			TokenIssuer:   r.str(FlagTokenIssuer),
			HashKey:       r.str(FlagHashKey),
		},
		Storage: Storage{
			Local: Local{
				Driver: r.str(FlagLocalDriver),
				Path:   r.str(FlagLocalPath),
			},
			DB: DB{
				DSN: r.str(FlagDatabaseDSN),
			},
			S3: S3{
				Bucket:   r.str(FlagS3Bucket),
				Region:   r.str(FlagS3Region),
				Endpoint: r.str(FlagS3Endpoint),
				Prefix:   r.str(FlagS3Prefix),
			},
		},
		Server: Server{
			HTTPAddress:     r.str(FlagAddress),
			RequestTimeout:  r.duration(FlagRequestTimeout),
			ShutdownTimeout: r.duration(FlagShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    r.str(FlagServerURL),
			RequestTimeout: r.duration(FlagRequestTimeout),
		},
		Workers: Workers{
			PersistTimeout: r.duration(FlagPersistTimeout),
		},
		Log: Log{
			Level: r.str(FlagLogLevel),
			File:  r.str(FlagLogFile),
		},
		JSONFilePath: r.str(FlagConfig),
	}

	if r.err != nil {
		return nil, fmt.Errorf("error reading flags: %w", r.err)
	}

	return cfg, nil
}

// flagReader reads optional flags and remembers the first conversion error.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	f := r.fs.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func (r *flagReader) duration(name string) time.Duration {
	if r.fs.Lookup(name) == nil {
		return 0
	}
	d, err := r.fs.GetDuration(name)
	if err != nil {
		r.err = errors.Join(r.err, err)
	}
	return d
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
