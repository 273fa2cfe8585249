package main

import (
	"os"

	"github.com/buemura/zapcli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
