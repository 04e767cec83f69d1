package cmd

import (
	"github.com/spf13/cobra"
)

var incCmd = &cobra.Command{
	Use:   "inc <rows|stitches>",
	Short: "Add one to a digit",
	Long: `Add one to a digit, exactly like tapping it.

Incrementing stitches past 9 wraps to 0 and adds a row. Rows wrap from 9 to 0.`,
	Example: `  stitchr inc stitches
  stitchr inc rows`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := digitArg(args)
		if err != nil {
			return err
		}

		s, err := openSession()
		if err != nil {
			return err
		}

		defer s.Close()

		return printState(cmd.OutOrStdout(), s.ctrl.IncrementDigit(d), false)
	},
}

func init() {
	rootCmd.AddCommand(incCmd)
}
