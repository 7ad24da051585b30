// Numerix CLI — инструмент командной строки для числовых операций
// и коротких ответов через HTTP API.
//
// Использование:
//
//	numerix [--api-url URL] [--json] <command> [args]
//
// Команды:
//
//	fib       Последовательность Фибоначчи
//	prime     Фильтрация простых чисел
//	hcf       Наибольший общий делитель
//	lcm       Наименьшее общее кратное
//	ask       Вопрос провайдеру коротких ответов
//	health    Проверка живости сервера
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Numerix/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "numerix",
		Short:         "Numerix CLI — numeric computations and short answers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewFibCmd(clientFn, outputFn),
		cli.NewPrimeCmd(clientFn, outputFn),
		cli.NewHCFCmd(clientFn, outputFn),
		cli.NewLCMCmd(clientFn, outputFn),
		cli.NewAskCmd(clientFn, outputFn),
		cli.NewHealthCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
