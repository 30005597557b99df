package main

import "github.com/KaramelBytes/sampledeck/cmd"

func main() {
	cmd.Execute()
}
