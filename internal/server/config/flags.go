package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-g string   gRPC health bind address, "" disables it
//	-i string   homepage HTML file served by GET /index
//	-s string   static files directory
//	-m int      max multipart upload size, MiB
//	-t int      shutdown timeout, seconds
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (json, text)
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and flags
// owned by other components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-i", "-s", "-m", "-t", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address, empty to disable")
	fs.StringVar(&config.HomepageFile, "i", config.HomepageFile, "homepage HTML file")
	fs.StringVar(&config.StaticDir, "s", config.StaticDir, "static files directory")

	maxUpload := fs.Int64("m", config.MaxUploadSize/megabyte, "max upload size (in MiB)")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// unit-converted flags only override when given, so byte-exact values
	// from a config file survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			config.MaxUploadSize = *maxUpload * megabyte
		case "t":
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
