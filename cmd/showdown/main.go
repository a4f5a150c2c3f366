package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"showdown-server/internal/config"
	"showdown-server/pkg/showdown"
)

var file = flag.String("f", "", "a YAML file of entries (defaults to the built-in sample hands)")

func main() {
	flag.Parse()
	setupLogger()

	entries := showdown.SampleEntries()
	if *file != "" {
		var err error
		entries, err = showdown.LoadFile(*file)
		if err != nil {
			logrus.WithError(err).WithField("file", *file).Fatal("could not load entries")
		}
	}

	result, err := showdown.Run(context.Background(), entries, config.Instance().Classify.Workers)
	if err != nil {
		logrus.WithError(err).Fatal("could not run showdown")
	}

	if err := result.Render(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("could not write result")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	switch {
	case strings.ToLower(os.Getenv("LOG_FORMAT")) == "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case !term.IsTerminal(int(os.Stderr.Fd())):
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
}
