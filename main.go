package main

import "github.com/beka-birhanu/amazeing/cmd"

func main() {
	cmd.Execute()
}
