package main

import "github.com/KaramelBytes/comps-cli/cmd"

func main() {
	cmd.Execute()
}
