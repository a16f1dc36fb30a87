package main

import (
	"fmt"
	"os"

	"github.com/Vinillian/daily-tracker/cmd"
	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			trkerr.Render(trkerr.New(trkerr.CatIO, fmt.Sprintf("unexpected panic: %v", r)), true)
			os.Exit(2)
		}
	}()

	verbose, err := cmd.Execute()
	if err != nil {
		trkerr.Render(err, verbose)
		os.Exit(1)
	}
}
