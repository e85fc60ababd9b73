package main

import "github.com/igmartin/mlog/cmd"

func main() {
	cmd.Execute()
}
