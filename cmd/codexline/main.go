package main

import (
	"os"

	"github.com/lusipad/codexline/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
