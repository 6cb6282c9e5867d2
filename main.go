package main

import "github.com/HaiFongPan/colsplit/cmd"

func main() {
	cmd.Execute()
}
