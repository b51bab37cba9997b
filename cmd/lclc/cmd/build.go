package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Azzajazz/lcl/internal/diag"
	"github.com/Azzajazz/lcl/internal/driver"
	"github.com/Azzajazz/lcl/internal/source"
)

var outputPath string

var buildCmd = &cobra.Command{
	Use:   "build <input.l>",
	Short: "Compile an L source file to C",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		inputPath := args[0]
		verbose, _ := c.Flags().GetBool("verbose")

		src, err := os.ReadFile(inputPath)
		if err != nil {
			exitWithError("cannot read %s: %v", inputPath, err)
		}

		res := driver.Compile(string(src))
		if !res.OK() {
			buf := source.New(inputPath, string(src))
			fmt.Fprint(os.Stderr, diag.FormatAll(res.Diagnostics, buf))
			os.Exit(1)
		}

		out := outputPath
		if out == "" {
			out = defaultOutputPath(inputPath)
		}
		if err := os.WriteFile(out, []byte(res.C), 0o644); err != nil {
			exitWithError("cannot write %s: %v", out, err)
		}
		if verbose {
			fmt.Fprintf(os.Stdout, "wrote %s\n", out)
		}
		return nil
	},
}

func defaultOutputPath(inputPath string) string {
	for i := len(inputPath) - 1; i >= 0; i-- {
		if inputPath[i] == '.' {
			return inputPath[:i] + ".c"
		}
		if inputPath[i] == '/' {
			break
		}
	}
	return inputPath + ".c"
}

func init() {
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output C file path")
	rootCmd.AddCommand(buildCmd)
}
