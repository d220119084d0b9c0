package main

import (
	"github.com/NVIDIA/go-enums/pkg/cli"
)

func main() {
	cli.Execute()
}
