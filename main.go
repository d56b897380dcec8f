package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/metrics"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/server"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print the version of the program")
	logfileFlag := flag.String("logfile", "", "Path to log file")
	configFlag := flag.String("config", "", "Path to YAML settings file")
	previewFlag := flag.String("preview", "", "Print the connector for path:line:column and exit")
	fontSizeFlag := flag.Float64("fontsize", 14, "Editor font size for -preview")
	flag.Parse()

	// Version tag
	if *versionFlag {
		fmt.Printf("line-to-defn LSP server version %s\n", Version)
		return
	}

	// Settings
	settings := config.DefaultSettings()
	if *configFlag != "" {
		f, err := os.Open(*configFlag)
		if err != nil {
			log.Fatalf("Failed to open settings file: %v", err)
		}
		settings, err = config.LoadSettings(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	// One-shot preview mode
	if *previewFlag != "" {
		lineHeightPx, err := metrics.LineHeight(*fontSizeFlag, runtime.GOOS)
		if err != nil {
			log.Fatalf("Bad font size: %v", err)
		}
		if err := runPreview(*previewFlag, settings, lineHeightPx); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	// Logging
	logfile := *logfileFlag
	if logfile == "" {
		logfile = settings.LogFile
	}
	if logfile != "" {
		logFile, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("Starting line-to-defn LSP server...")
	} else {
		log.SetOutput(io.Discard)
	}
	commonlog.Configure(2, nil) // Logger used by glsp

	// Initialize the server
	srv, err := server.NewServer(settings)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := srv.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
