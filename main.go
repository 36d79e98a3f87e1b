package main

import "kidcost/cmd"

func main() {
	cmd.Execute()
}
