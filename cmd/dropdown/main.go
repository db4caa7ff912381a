package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(newRootCmd()); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
