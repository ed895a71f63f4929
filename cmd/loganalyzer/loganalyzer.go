package main

import "github.com/Egor213/LogAnalyzer/internal/app"

func main() {
	app.Run()
}
