package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current row and stitch count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.OutOrStdout(), showJSON)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(w io.Writer, asJSON bool) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	defer s.Close()

	return printState(w, s.State(), asJSON)
}
