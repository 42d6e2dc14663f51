package main

import "github.com/iksnae/dialogue-sync/cmd"

func main() {
	cmd.Execute()
}
