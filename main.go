package main

import "aisle/cmd"

func main() {
	cmd.Execute()
}
