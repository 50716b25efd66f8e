// CLI-only version (no GUI dependencies)
package main

import "sigpad/internal/cli"

func main() {
	cli.Execute()
}
