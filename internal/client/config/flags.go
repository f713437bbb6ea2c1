package config

import (
	"flag"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
)

func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-m", "-a", "-f", "-s", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	mode := string(config.Mode)
	noLatency := !config.SimulateLatency

	fs.StringVar(&mode, "m", mode, "client mode: local or remote")
	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server endpoint address")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "SQLite state file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.OnlineCheckInterval, "i", config.OnlineCheckInterval, "online check interval")
	fs.BoolVar(&noLatency, "d", noLatency, "disable simulated latency")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.Mode = Mode(mode)
	config.SimulateLatency = !noLatency
}
