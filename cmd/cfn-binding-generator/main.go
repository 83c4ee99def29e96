// Package main provides the CLI entrypoint for cfn-binding-generator.
//
// cfn-binding-generator turns the CloudFormation resource specification into
// typed Go packages:
//   - gen reads bindings.yaml and writes one package per service
//   - list shows the services and resource types that are available
//   - check validates resource properties in existing templates
package main

import (
	"fmt"
	"os"

	"cfn-binding-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
