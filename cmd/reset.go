package cmd

import (
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [rows|stitches]",
	Short: "Zero one digit, or both",
	Example: `  stitchr reset            # both digits
  stitchr reset stitches`,
	Args: cobra.MaximumNArgs(1),
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

		return printState(cmd.OutOrStdout(), s.ctrl.Reset(d), false)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
