package cli

import (
	"github.com/spf13/cobra"
)

// NewHealthCmd создаёт команду health: проверка живости API.
func NewHealthCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := clientFn().Health()
			if err != nil {
				return err
			}

			outputFn().Print(
				[]string{"STATUS", "TIMESTAMP"},
				[][]string{{status.Status, status.Timestamp}},
				status,
			)
			return nil
		},
	}
}
