// --- START OF FINAL REVISED FILE cmd/folder-summary/main.go ---
package main

// main is the entry point for the folder-summary application.
// Build-time variables 'version', 'commit', and 'date' are declared in root.go
// and populated via -ldflags.
func main() {
	Execute()
}

// --- END OF FINAL REVISED FILE cmd/folder-summary/main.go ---
