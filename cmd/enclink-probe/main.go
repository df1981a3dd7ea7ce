// Command enclink-probe is a diagnostic tool for stream-attached encoders:
// it opens the configured transport, performs an ENQ handshake and optionally
// sends one command, printing the decoded response fields.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarchetti/go-enclink/client"
	"github.com/smarchetti/go-enclink/protocol"
	"github.com/smarchetti/go-enclink/transport"
)

func main() {
	configPath := flag.String("config", "", "path to probe config.toml")
	code := flag.String("code", "", "command code to send after the handshake")
	fieldsArg := flag.String("fields", "", "comma-separated text fields for the command")
	skipLRC := flag.Bool("skip-lrc", false, "transmit LRC_SKIP instead of a computed checksum")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("app", "enclink-probe").Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var link client.Transport
	switch cfg.Transport {
	case "serial":
		link = transport.NewSerial(cfg.Device, cfg.BaudRate)
	case "tcp":
		link = transport.NewTCP(cfg.Addr)
	default:
		logger.Fatal().Str("transport", cfg.Transport).Msg("unknown transport kind")
	}

	cli := client.New(link,
		client.WithLogger(logger),
		client.WithSkipChecksum(cfg.SkipChecksum),
	)

	if err := cli.Open(); err != nil {
		logger.Fatal().Err(err).Msg("open transport")
	}
	defer cli.Close()

	if err := cli.Handshake(); err != nil {
		logger.Fatal().Err(err).Msg("handshake")
	}
	logger.Info().Msg("encoder acknowledged handshake")

	if *code == "" {
		return
	}

	cmd := &protocol.Generic{Code: *code, SkipLRC: *skipLRC}
	if *fieldsArg != "" {
		cmd.Fields = strings.Split(*fieldsArg, ",")
	}

	resp, err := cli.Do(cmd)
	if err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}

	for i, f := range resp.Fields() {
		fmt.Printf("field %d: %q\n", i, f.Text())
	}
}
