package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bookhunt/internal/game"
)

func main() {
	configDir := flag.String("config", "assets/config", "directory holding game.yaml")
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	dir, err := resolveConfigDir(*configDir, explicit)
	if err != nil {
		log.Fatalf("bookhunt: %v", err)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("bookhunt: %v", err)
			}
		}
	}

	g, err := game.New(dir)
	if err != nil {
		log.Fatalf("bookhunt: %v", err)
	}
	g.Run()
}

// resolveConfigDir pins a config directory given on the command line to the
// shell's working directory. The default stays relative to the executable.
func resolveConfigDir(dir string, explicit bool) (string, error) {
	if !explicit || filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Abs(dir)
}
