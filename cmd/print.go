package cmd

import (
	"fmt"
	"os"

	"github.com/plotdeck/plotdeck/tui"
)

func PrintError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
	}
}

func PrintWarning(message string) {
	if message != "" {
		fmt.Println(tui.RenderWarning(message))
	}
}

func PrintSuccess(message string) {
	if message != "" {
		fmt.Println(tui.RenderSuccess(message))
	}
}
