package config

import (
	"flag"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    HTTP bind address (e.g., ":8080"), empty disables HTTP
//	-r string    gRPC bind address (e.g., ":50051"), empty disables gRPC
//	-b string    storage backend: memory, sqlite, postgres, s3
//	-f string    SQLite database file
//	-d string    PostgreSQL DSN
//	-s string    session token HMAC secret
//	-t duration  session token lifetime (0 = no expiry)
//	-m           simulate remote API latency
//	-u string    S3 access key
//	-p string    S3 secret key
//	-n string    S3 bucket name
//	-g string    S3 region
//	-e string    S3 base endpoint
//	-l string    log level (debug, info, warn, error)
//
// Only the flags above are taken from args (see flagx.FilterArgs), so the
// -c/-config flag and unknown flags never collide with this set.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-r", "-b", "-f", "-d", "-s", "-t", "-m", "-u", "-p", "-n", "-g", "-e", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.GRPCAddr, "r", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.Storage, "b", config.Storage, "storage backend")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "SQLite database file")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "session token lifetime")
	fs.BoolVar(&config.SimulateLatency, "m", config.SimulateLatency, "simulate API latency")
	fs.StringVar(&config.S3.AccessKey, "u", config.S3.AccessKey, "S3 access key")
	fs.StringVar(&config.S3.SecretKey, "p", config.S3.SecretKey, "S3 secret key")
	fs.StringVar(&config.S3.Bucket, "n", config.S3.Bucket, "S3 bucket")
	fs.StringVar(&config.S3.Region, "g", config.S3.Region, "S3 region")
	fs.StringVar(&config.S3.BaseEndpoint, "e", config.S3.BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
