package main

import "github.com/gkevents/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
