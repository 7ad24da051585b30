package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewFibCmd создаёт команду fib: последовательность Фибоначчи.
func NewFibCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Generate the first N+1 Fibonacci numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("N must be an integer: %q", args[0])
			}

			data, err := clientFn().Compute("fibonacci", n)
			if err != nil {
				return err
			}

			outputFn().Result("fibonacci", data)
			return nil
		},
	}
}

// NewPrimeCmd создаёт команду prime: фильтрация простых чисел.
func NewPrimeCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return newArrayCmd(clientFn, outputFn,
		"prime", "prime N...", "Filter the prime numbers out of a list")
}

// NewHCFCmd создаёт команду hcf: наибольший общий делитель.
func NewHCFCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return newArrayCmd(clientFn, outputFn,
		"hcf", "hcf N...", "Highest common factor of a list")
}

// NewLCMCmd создаёт команду lcm: наименьшее общее кратное.
func NewLCMCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return newArrayCmd(clientFn, outputFn,
		"lcm", "lcm N...", "Least common multiple of a list")
}

// newArrayCmd — общая фабрика команд над массивом целых.
func newArrayCmd(clientFn func() *Client, outputFn func() *Output, key, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}

			data, err := clientFn().Compute(key, vals)
			if err != nil {
				return err
			}

			outputFn().Result(key, data)
			return nil
		},
	}
}

// parseInts разбирает аргументы команды как целые числа.
func parseInts(args []string) ([]int64, error) {
	vals := make([]int64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an integer: %q", i+1, arg)
		}
		vals[i] = n
	}
	return vals, nil
}
