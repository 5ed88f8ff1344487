package auth

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// promptLogin prints the authorization URL and, when attached to a terminal,
// tries to open it in the user's browser. Headless sessions just get the URL
// to complete the login elsewhere.
func promptLogin(opts LoginOptions, authURL string) {
	out := opts.Out
	if out == nil {
		out = io.Writer(os.Stdout)
	}

	fmt.Fprintf(out, "Opening your browser to sign in:\n\n  %s\n\n", authURL)

	openURL := opts.OpenURL
	if openURL == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return
		}

		openURL = openInBrowser
	}

	if err := openURL(authURL); err != nil {
		fmt.Fprintf(out, "Could not open a browser (%v); visit the URL above manually.\n", err)
	}
}

// openInBrowser hands the URL to the platform launcher.
func openInBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}
