package main

import "github.com/tanq16/sdlfetch/cmd"

func main() {
	cmd.Execute()
}
