package main

import "github.com/mental-health-mirror/mood-core/cmd"

func main() {
	cmd.Execute()
}
