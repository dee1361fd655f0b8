package main

import (
	"os"

	"github.com/i474232898/weather-cli/internal/cli"
	"github.com/i474232898/weather-cli/internal/render"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], "weather-spark", func(bool) render.Renderer {
		return render.Plain{}
	}))
}
