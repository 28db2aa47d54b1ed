// cmd/firmbench/main.go
package main

import (
	"os"

	"firmbench-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
