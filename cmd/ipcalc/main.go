// Command ipcalc is a command-line front end over the address, parser,
// range, and allocator API.
package main

import "github.com/LucasZ876/IPAddress-sub000/internal/cli"

func main() {
	cli.Execute()
}
