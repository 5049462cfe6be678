package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"deedles.dev/imposter/internal/config"
	"github.com/sirupsen/logrus"
)

const Name = "imposter"

func initLog() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	env, ok := os.LookupEnv("IMPOSTER_LOG")
	if !ok {
		return
	}
	level, err := logrus.ParseLevel(env)
	if err != nil {
		logrus.WithError(err).Warn("invalid IMPOSTER_LOG")
		return
	}
	logrus.SetLevel(level)
}

func main() {
	c, err := config.Parse(Name, os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v: %v\n", Name, err)
		os.Exit(2)
	}

	initLog()

	server := Server{
		Config: c,
	}
	os.Exit(server.Run())
}
