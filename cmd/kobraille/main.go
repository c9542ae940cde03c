package main

import (
	"os"

	"github.com/msto63/kobraille/cmd/kobraille/cmd"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(kberrors.ExitCode(kberrors.CodeOf(err)))
	}
}
