package main

import "inventory-reconciler/cmd"

func main() {
	cmd.Execute()
}
