package main

import "github.com/docbase-io/docbase/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
