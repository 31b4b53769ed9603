package main

import (
	"github.com/bornholm/inventory/internal/command"
	"github.com/bornholm/inventory/internal/command/asset"
)

func main() {
	command.Main(
		"inventory-cli", "a cloud asset registry client tool",
		asset.Command(),
	)
}
