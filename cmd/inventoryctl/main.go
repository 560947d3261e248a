package main

import "go-inventory-tracker/cmd/inventoryctl/commands"

func main() {
	commands.Execute()
}
