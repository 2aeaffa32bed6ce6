package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/table"
)

func newTableCmd() *cobra.Command {
	var (
		tableFormat string
		rowNumbers  bool
		output      string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Render a numeric CSV file as CSV or LaTeX",
		Long: `Read a numeric CSV file (a header row with letters is dropped and the
columns are renamed col0, col1, ...) and render it as CSV or a LaTeX tabular. With --output the result is
written to a new file; existing files are never overwritten.

Example: torsion table results.csv --format latex --row-numbers -o results.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f format.TableFormat
			switch strings.ToLower(tableFormat) {
			case "csv":
				f = format.TableCSV
			case "latex", "tex":
				f = format.TableLaTeX
			default:
				return fmt.Errorf("unknown table format %q", tableFormat)
			}

			cols, err := table.ReadCSV(args[0])
			if err != nil {
				return err
			}
			columns := make([]table.Column, len(cols))
			for i, c := range cols {
				columns[i] = table.Floats("", c)
			}
			t, err := table.New(columns...)
			if err != nil {
				return err
			}

			var opts []table.Option
			if rowNumbers {
				opts = append(opts, table.WithRowNumbers())
			}

			if output == "" {
				s, err := t.Render(f, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)

				return nil
			}

			if compression != "" {
				ct, ok := format.ParseCompressionType(compression)
				if !ok {
					return fmt.Errorf("unknown compression %q", compression)
				}
				opts = append(opts, table.WithCompression(ct))
			}
			target, err := table.Target(output, f, opts...)
			if err != nil {
				return err
			}
			if err := t.Write(output, f, opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableFormat, "format", "f", "latex", "output format: csv or latex")
	cmd.Flags().BoolVar(&rowNumbers, "row-numbers", false, "prepend a № column")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&compression, "compression", "", "compress the written file: zstd, s2 or lz4")

	return cmd
}
