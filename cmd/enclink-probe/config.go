package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// enclink-probe config.toml key mapping.
type fileConfig struct {
	Transport    string `toml:"transport"` // "serial" or "tcp"
	Device       string `toml:"device"`
	BaudRate     int    `toml:"baud_rate"`
	Addr         string `toml:"addr"`
	SkipChecksum bool   `toml:"skip_checksum"`
	Debug        bool   `toml:"debug"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Transport: "serial",
		Device:    "/dev/ttyUSB0",
		BaudRate:  9600,
	}
}

// loadConfig overlays the TOML file at path onto the defaults. An empty path
// returns the defaults untouched.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fileConfig{}, fmt.Errorf("load probe config: %w", err)
	}

	if meta.IsDefined("transport") {
		cfg.Transport = strings.TrimSpace(raw.Transport)
	}
	if meta.IsDefined("device") {
		cfg.Device = strings.TrimSpace(raw.Device)
	}
	if meta.IsDefined("baud_rate") {
		cfg.BaudRate = raw.BaudRate
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("skip_checksum") {
		cfg.SkipChecksum = raw.SkipChecksum
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}

	return cfg, nil
}
