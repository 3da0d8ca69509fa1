package main

import "github.com/dogeorg/wifiscanner/cmd/wifiscan/cmd"

func main() {
	cmd.Execute()
}
