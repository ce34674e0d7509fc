// Package cli provides common utilities for pb-data command-line tools.
//
// This package includes:
//   - Output formatting (JSON, YAML, raw)
//   - Human-readable size and duration formatting
//   - Request/profile file loading (YAML/JSON)
//
// Example usage:
//
//	// Load a request or profile from a YAML file
//	var req struct {
//	    Policy string `yaml:"policy"`
//	}
//	err := cli.LoadRequest("profile.yaml", &req)
//
//	// Output a result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	})
package cli
