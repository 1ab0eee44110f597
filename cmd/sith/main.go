package main

import (
	"os"

	"github.com/parkervanroy/sith/app"
	"github.com/parkervanroy/sith/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
