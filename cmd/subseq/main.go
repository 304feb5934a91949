// cmd/subseq/main.go
package main

import (
	"subseq/internal/app"
	"subseq/internal/appshell"
)

func main() {
	appshell.Main("subseq", app.RunProgram)
}
