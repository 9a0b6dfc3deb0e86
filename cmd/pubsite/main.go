// Command pubsite publishes Markdown drafts as a static blog.
package main

// version is set at build time via ldflags.
var version = "dev"

func main() {
	Execute()
}
