package main

import (
	"github.com/clearsig/clarity/pkg/cli"
)

func main() {
	cli.Execute()
}
