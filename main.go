package main

import "rein-stock/cmd"

func main() {
	cmd.Execute()
}
