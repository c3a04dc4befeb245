package main

import "printcost/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
