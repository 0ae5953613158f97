// Package main is the entry point for ArtistDesk.
package main

func main() {
	Execute()
}
