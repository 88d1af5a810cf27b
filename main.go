package main

import "gpuadvisor/internal/cli"

func main() {
	cli.Execute()
}
