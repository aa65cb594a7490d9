// Command planner runs eager best-first graph search over classical
// planning tasks assembled from a search-spec grammar.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/felixgeelhaar/planner-go/interfaces/cli"
)

func main() {
	app := cli.New()
	err := app.Execute(context.Background())
	if err != nil && !cli.AlreadyReported(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
