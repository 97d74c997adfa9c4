// Command rangefmt parses, checks and formats HTTP Range header values.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			log.Error("rangefmt failed", "err", err)
		}
		os.Exit(1)
	}
}
