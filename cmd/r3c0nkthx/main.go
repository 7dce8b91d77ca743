package main

// main is the entry point for the r3c0nkthx CLI.
func main() {
	Execute()
}
