package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logger.WithError(err).Fatal("setlist failed")
	}
}
