package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pbyhre/pb-cpp-data/pkg/cli"
	"github.com/pbyhre/pb-cpp-data/pkg/strutil"
)

var classifyFlags struct {
	output string
}

// Classification lists the predicates a value matched.
type Classification struct {
	Value   string   `yaml:"value" json:"value"`
	Matches []string `yaml:"matches" json:"matches"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify [values...]",
	Short: "Classify string values with the classification predicates",
	Long: `Run the string-classification predicates over the given values, or
over stdin lines when no values are given. A value that matches no
predicate is reported as "string".

Examples:
  pbdata classify 42 3.14 true 2024-01-15 0xff hello
  cut -d, -f2 data.csv | pbdata classify`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyFlags.output, "output", "o", "", "output format: yaml, json or raw (default: table)")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	values := args
	if len(values) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strutil.Trim(scanner.Text()); line != "" {
				values = append(values, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	results := make([]Classification, 0, len(values))
	for _, v := range values {
		results = append(results, Classification{Value: v, Matches: classifyValue(v)})
	}

	if classifyFlags.output != "" {
		return cli.Output(results, cli.OutputOptions{Format: cli.OutputFormat(classifyFlags.output)})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tMATCHES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", r.Value, strings.Join(r.Matches, ", "))
	}
	return w.Flush()
}

// classifyValue returns the names of all predicates the value matches, or
// ["string"] when none match.
func classifyValue(v string) []string {
	var matches []string
	for _, p := range []struct {
		name string
		fn   func(string) bool
	}{
		{"integer", strutil.IsInteger},
		{"double", strutil.IsDouble},
		{"numeric", strutil.IsNumeric},
		{"real", strutil.IsRealNumber},
		{"hexadecimal", strutil.IsHexadecimal},
		{"octal", strutil.IsOctal},
		{"binary", strutil.IsBinary},
		{"boolean", strutil.IsBoolean},
		{"date", strutil.IsDate},
	} {
		if p.fn(v) {
			matches = append(matches, p.name)
		}
	}
	if len(matches) == 0 {
		matches = []string{"string"}
	}
	return matches
}
