package main

import "sitegen_server/cmd"

func main() {
	cmd.Execute()
}
