package main

import "corporate-web/cmd"

func main() {
	cmd.Execute()
}
