// Main entry point for the application
package main

import (
	"log"

	"starbar/internal/ui"
)

func main() {
	// Set the logger prefix
	log.SetPrefix("StarBar ")

	ui.CreateApplication()
}
