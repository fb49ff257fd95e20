package main

import "github.com/denizcan/drip-cli/cmd/drip"

func main() {
	drip.Execute()
}
