package main

import "github.com/crmkit/ghl-bridge/cmd"

func main() {
	cmd.Execute()
}
