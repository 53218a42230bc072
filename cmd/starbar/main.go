package main

import (
	"starbar/internal/ui"
)

func main() {

	ui.CreateApplication()
}
