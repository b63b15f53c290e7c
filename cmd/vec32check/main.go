// Command vec32check fuzzes and times the 32-bit word-vector arithmetic
// kernel. It exits with 3 when any suite finds a mismatch.
package main

import (
	"context"
	"os"

	"github.com/mjakub/bignum/internal/app"
	apperrors "github.com/mjakub/bignum/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
