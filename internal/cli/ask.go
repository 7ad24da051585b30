package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCmd создаёт команду ask: вопрос провайдеру коротких ответов.
func NewAskCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION...",
		Short: "Ask the short-answer provider a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			data, err := clientFn().Compute("AI", question)
			if err != nil {
				return err
			}

			outputFn().Result("AI", data)
			return nil
		},
	}
}
