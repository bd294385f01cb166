package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"journalflow.app/editorial/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
