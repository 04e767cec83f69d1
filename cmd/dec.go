package cmd

import (
	"github.com/spf13/cobra"
)

var decCmd = &cobra.Command{
	Use:   "dec <rows|stitches>",
	Short: "Subtract one from a digit",
	Long: `Subtract one from a digit. A digit already at 0 stays at 0 and
stitches never borrow from rows.`,
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

		return printState(cmd.OutOrStdout(), s.ctrl.DecrementDigit(d), false)
	},
}

func init() {
	rootCmd.AddCommand(decCmd)
}
