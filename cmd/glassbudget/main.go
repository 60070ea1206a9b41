package main

import (
	"os"

	"github.com/alexis/glassbudget/cmd/glassbudget/cli"
	"github.com/alexis/glassbudget/internal/clientconfig"
)

var version = "dev"

func main() {
	_ = clientconfig.LoadDotenv() // .env is optional

	cli.Version = version
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
