package main

import (
	"context"
	"os"

	"gitdesk.dev/gitdesk/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(context.Background(), cli.Options{Version: version}, os.Args[1:], os.Stdout, os.Stderr))
}
