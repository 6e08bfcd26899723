package main

import "nostrwot/cmd"

func main() {
	cmd.Execute()
}
