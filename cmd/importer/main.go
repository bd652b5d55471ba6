package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	a := &app{}

	if err := execute(newRootCmd(a), a); err != nil {
		logrus.WithError(err).Error("Comando finalizado com erro")
		os.Exit(1)
	}
}
