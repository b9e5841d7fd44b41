// Package main is the entry point for the anigraph application.
package main

import (
	"github.com/anisan-cli/anigraph/cmd"
	"github.com/anisan-cli/anigraph/config"
	"github.com/anisan-cli/anigraph/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
