// README: Operator CLI: quote a shipment, search cities, check and seed the tariff dataset.
package main

import (
	"errors"
	"fmt"
	"os"
)

const usage = `usage: tarifa <command> [flags]

commands:
  quote    price a shipment to a destination
  cities   list or search destination cities
  check    validate the tariff dataset and print a summary
  seed     write the built-in dataset to Postgres

Run "tarifa <command> -h" for command flags.`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "quote":
		err = runQuote(args, os.Stdout)
	case "cities":
		err = runCities(args, os.Stdout)
	case "check":
		err = runCheck(args, os.Stdout)
	case "seed":
		err = runSeed(args, os.Stdout)
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", os.Args[1], usage)
		os.Exit(2)
	}

	switch {
	case err == nil:
	case errors.Is(err, errNotQuoted):
		os.Exit(3)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
