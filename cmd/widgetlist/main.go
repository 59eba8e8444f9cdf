package main

import "github.com/ayn2op/widgetlist/internal/cmd"

func main() {
	cmd.Execute()
}
