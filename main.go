package main

import "finderinfo/cmd"

func main() {
	cmd.Execute()
}
