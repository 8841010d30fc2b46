package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/rootbench"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the built-in test functions",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, titleStyle.Render("Functions"))
		for _, name := range rootbench.Names() {
			e, err := rootbench.Lookup(name)
			if err != nil {
				return err
			}

			roots := make([]string, len(e.Roots))
			for i, r := range e.Roots {
				roots[i] = fmt.Sprintf("%.10g", r)
			}

			var extras []string
			if e.DF != nil {
				extras = append(extras, "newton")
			}
			if e.Big != nil {
				extras = append(extras, "big")
			}

			fmt.Fprintf(out, "  %s %-24s roots: %-28s %s\n",
				labelStyle.Render(e.Name), e.Description, strings.Join(roots, ", "),
				headerStyle.Render(strings.Join(extras, " ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
