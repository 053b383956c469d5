package main

import "github.com/elivatehq/planner/cmd"

func main() {
	cmd.Execute()
}
