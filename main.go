package main

import "github.com/ravener/Flowtime/cmd"

func main() {
	cmd.Execute()
}
