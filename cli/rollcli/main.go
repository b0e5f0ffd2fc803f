package main

import (
	"log"

	"github.com/frankonly/rollingmerkle/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize rollcli: %v", err)
	}

	cli.Execute()
}
