package main

import "github.com/geange/fatable/cli"

func main() {
	cli.Main()
}
