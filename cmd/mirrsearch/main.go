package main

import (
	"os"

	"mirrsearch/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args[1:]))
}
