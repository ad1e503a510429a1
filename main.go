package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/rpw-desktop/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// AppID keys the preferences store shared with the workbench GUI
const AppID = "com.ytget.rpw-desktop"

func main() {
	// Create new Fyne app; only its preferences and URL handling are used
	myApp := app.NewWithID(AppID)

	cmd := cli.NewRootCmd(myApp, cli.Options{Version: version})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
