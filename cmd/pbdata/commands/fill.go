package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pbyhre/pb-cpp-data/pkg/cli"
	"github.com/pbyhre/pb-cpp-data/pkg/memory"
)

var fillFlags struct {
	profileFile string
	policy      string
	percent     float64
	initialSize int
	maxSize     int
	lazy        bool
	chunkSize   int
	output      string
}

// GrowthStep records one resize observed while filling the buffer.
type GrowthStep struct {
	// Offset is the write offset that triggered the resize.
	Offset int `yaml:"offset" json:"offset"`

	// Size is the buffer size after the resize.
	Size int `yaml:"size" json:"size"`
}

// FillReport summarizes a fill run.
type FillReport struct {
	Input        string       `yaml:"input" json:"input"`
	Policy       string       `yaml:"policy" json:"policy"`
	BytesWritten int          `yaml:"bytes_written" json:"bytes_written"`
	FinalSize    int          `yaml:"final_size" json:"final_size"`
	MaxSize      int          `yaml:"max_size,omitempty" json:"max_size,omitempty"`
	Growths      []GrowthStep `yaml:"growths" json:"growths"`
	ElapsedMS    int64        `yaml:"elapsed_ms" json:"elapsed_ms"`
}

var fillCmd = &cobra.Command{
	Use:   "fill [file]",
	Short: "Stream data into a growable buffer and report its growth",
	Long: `Stream a file (or stdin) into a memory buffer and report every
resize the growth policy performed, the final size and the bytes written.

The buffer is configured from flags or from a YAML/JSON profile file:

  policy: percentage
  percent: 25
  initial_size: 1024
  max_size: 1048576
  lazy: true

Flags override values loaded from the profile file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillFlags.profileFile, "profile", "f", "", "buffer profile file (YAML or JSON)")
	fillCmd.Flags().StringVar(&fillFlags.policy, "policy", "", "growth policy: fixed, exponential, linear, percentage")
	fillCmd.Flags().Float64Var(&fillFlags.percent, "percent", memory.DefaultGrowthPercent, "growth rate for the percentage policy")
	fillCmd.Flags().IntVar(&fillFlags.initialSize, "initial-size", 0, "initial buffer size in bytes")
	fillCmd.Flags().IntVar(&fillFlags.maxSize, "max-size", 0, "maximum buffer size in bytes (0 = unbounded)")
	fillCmd.Flags().BoolVar(&fillFlags.lazy, "lazy", false, "defer allocation until the first write")
	fillCmd.Flags().IntVar(&fillFlags.chunkSize, "chunk-size", 32*1024, "read chunk size in bytes")
	fillCmd.Flags().StringVarP(&fillFlags.output, "output", "o", "", "output format: yaml, json or raw (default: summary table)")

	rootCmd.AddCommand(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	prof, err := loadFillProfile(cmd)
	if err != nil {
		return err
	}
	policy, err := prof.GrowthPolicy()
	if err != nil {
		return err
	}

	in, name, err := openFillInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	m := memory.New(policy, prof.InitialSize, prof.Options()...)
	report := FillReport{
		Input:   name,
		Policy:  prof.Policy,
		MaxSize: prof.MaxSize,
		Growths: []GrowthStep{},
	}

	start := time.Now()
	chunk := make([]byte, fillFlags.chunkSize)
	offset := 0
	lastSize := m.Size()
	for {
		n, readErr := in.Read(chunk)
		if n > 0 {
			if _, err := m.WriteAt(chunk[:n], int64(offset)); err != nil {
				return fmt.Errorf("write at offset %d: %w", offset, err)
			}
			offset += n
			if size := m.Size(); size != lastSize {
				report.Growths = append(report.Growths, GrowthStep{Offset: offset - n, Size: size})
				slog.Debug("buffer grew", "offset", offset-n, "from", lastSize, "to", size)
				lastSize = size
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read %s: %w", name, readErr)
		}
	}
	elapsed := time.Since(start)

	report.BytesWritten = offset
	report.FinalSize = m.Size()
	report.ElapsedMS = elapsed.Milliseconds()

	if fillFlags.output != "" {
		return cli.Output(report, cli.OutputOptions{Format: cli.OutputFormat(fillFlags.output)})
	}
	printFillSummary(report, elapsed)
	return nil
}

// loadFillProfile builds the effective profile: defaults, then the profile
// file, then any flags the user set explicitly.
func loadFillProfile(cmd *cobra.Command) (Profile, error) {
	prof := DefaultProfile()
	if fillFlags.profileFile != "" {
		if err := cli.LoadRequest(fillFlags.profileFile, &prof); err != nil {
			return Profile{}, err
		}
	}
	if cmd.Flags().Changed("policy") {
		prof.Policy = fillFlags.policy
	}
	if cmd.Flags().Changed("percent") {
		prof.Percent = fillFlags.percent
	}
	if cmd.Flags().Changed("initial-size") {
		prof.InitialSize = fillFlags.initialSize
	}
	if cmd.Flags().Changed("max-size") {
		prof.MaxSize = fillFlags.maxSize
	}
	if cmd.Flags().Changed("lazy") {
		prof.Lazy = fillFlags.lazy
	}
	return prof, nil
}

func openFillInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return os.Stdin, "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}

func printFillSummary(r FillReport, elapsed time.Duration) {
	styles := cli.NewStyles(cli.DefaultTheme)
	fmt.Println(styles.Title.Render("fill summary"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "input:\t%s\n", r.Input)
	fmt.Fprintf(w, "policy:\t%s\n", r.Policy)
	fmt.Fprintf(w, "written:\t%s\n", cli.FormatBytesInt(r.BytesWritten))
	fmt.Fprintf(w, "final size:\t%s\n", cli.FormatBytesInt(r.FinalSize))
	if r.MaxSize > 0 {
		fmt.Fprintf(w, "max size:\t%s\n", cli.FormatBytesInt(r.MaxSize))
	}
	fmt.Fprintf(w, "growths:\t%d\n", len(r.Growths))
	fmt.Fprintf(w, "elapsed:\t%s\n", cli.FormatDuration(elapsed))
	w.Flush()

	for _, g := range r.Growths {
		fmt.Println(styles.Dim.Render(fmt.Sprintf("  grew to %s at offset %d", cli.FormatBytesInt(g.Size), g.Offset)))
	}
}
