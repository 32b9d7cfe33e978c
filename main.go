package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/simplechat/appicon/internal/app"
	"github.com/simplechat/appicon/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one export and returns the process exit code, so deferred
// cleanup has finished before the process exits.
func run(args []string) int {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Flags
	fs := flag.NewFlagSet("appicon", flag.ContinueOnError)
	root := fs.String("root", defaults.Root, "directory the icon tree is written under; also configurable via "+app.EnvRoot)
	debug := fs.Bool("debug", defaults.Debug, "enable debug logging to "+app.DebugLogPath+"; also configurable via "+app.EnvDebug)
	stdioLog := fs.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+app.EnvStdioLog)
	preview := fs.String("preview", "", "also write a contact sheet of every size to this PNG path")
	framebuffer := fs.String("fb", "", "also show the contact sheet on this framebuffer device (e.g. "+render.DefaultFramebuffer+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	cfg := app.Config{
		Root:        *root,
		Debug:       *debug,
		StdioLog:    *stdioLog,
		PreviewPath: *preview,
		Framebuffer: *framebuffer,
	}
	a := app.New(cfg, os.Stdout)

	if cfg.Debug {
		f, err := os.OpenFile(app.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			a.Logger = app.NewFileLogger(f)
			a.Logger.Infof("main", "debug logging enabled, root=%s", cfg.Root)
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	if err := a.Run(); err != nil {
		a.Logger.Errorf("main", "run failed: %v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
