// Command rfplens is a retrieval-augmented RFP analysis tool.
package main

import "github.com/rfplens-labs/rfplens-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
