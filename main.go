package main

import "github.com/ZBlocker655/10k-sentences-pipeline/cmd"

func main() {
	cmd.Execute()
}
