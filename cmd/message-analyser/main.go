package main

import "github.com/TomasVenkrbec/Facebook-message-analyser/internal/cmd"

func main() {
	cmd.Execute()
}
