package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"showdown-server/internal/config"
)

var out = flag.String("o", "", "write the config to this file instead of stdout")

func main() {
	flag.Parse()

	if err := run(*out, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("could not generate config")
	}
}

// run writes the default config to path, or to stdout if path is empty
func run(path string, stdout io.Writer) error {
	if path == "" {
		return writeConfig(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeConfig(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeConfig(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(config.DefaultConfig())
}
