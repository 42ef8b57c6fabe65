package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/go-jsonnet"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PRAIRIELEARN_LSP"

	keyLogLevel       = "log.level"
	keyLogFile        = "log.file"
	keyServeTransport = "serve.transport"
	keyServeAddress   = "serve.address"

	defaultLogLevel       = "info"
	defaultServeTransport = "stdio"
	defaultServeAddress   = "127.0.0.1:4389"
)

var config = newConfig()

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyServeTransport, defaultServeTransport)
	v.SetDefault(keyServeAddress, defaultServeAddress)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := config.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %s", flag.Name, err.Error()))
	}
}

// loadConfig reads path when given. Without a path, no file is read and
// defaults, environment, and flags apply. Jsonnet files are evaluated to JSON
// first.
func loadConfig(path string) error {
	if path == "" {
		return nil
	}
	switch filepath.Ext(path) {
	case ".jsonnet", ".libsonnet":
		return loadJsonnetConfig(path)
	}

	config.SetConfigFile(path)
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

func loadJsonnetConfig(path string) error {
	vm := jsonnet.MakeVM()
	evaluated, err := vm.EvaluateFile(path)
	if err != nil {
		return fmt.Errorf("evaluating config %s: %w", path, err)
	}
	config.SetConfigType("json")
	if err := config.ReadConfig(strings.NewReader(evaluated)); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}
