package main

import "github.com/omrozmn/x-ear-sub003/cmd"

func main() {
	cmd.Execute()
}
