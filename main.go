package main

import (
	"github.com/saptools/sapgui-cli/cmd"

	// Register the Windows COM scripting backend.
	_ "github.com/saptools/sapgui-cli/internal/scripting/sapgui"
)

func main() {
	cmd.Execute()
}
