package main

import "github.com/maxvaer/plaincheck/cmd"

func main() {
	cmd.Execute()
}
