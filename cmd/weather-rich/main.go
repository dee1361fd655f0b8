package main

import (
	"os"

	"github.com/i474232898/weather-cli/internal/cli"
	"github.com/i474232898/weather-cli/internal/render"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], "weather-rich", func(color bool) render.Renderer {
		return render.Rich{Color: color}
	}))
}
