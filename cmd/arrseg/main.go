// cmd/arrseg/main.go
package main

import (
	"arrseg/internal/app"
	"arrseg/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
