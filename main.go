package main

import "github.com/SBDJUK/dsesh/cmd"

func main() {
	cmd.Execute()
}
