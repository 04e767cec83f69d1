package main

import "github.com/inovacc/stitchr/cmd"

func main() {
	cmd.Execute()
}
