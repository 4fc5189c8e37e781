package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/hotkey"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default ~/.mudra/config.toml)")
	flag.Parse()

	fmt.Println("Mudra - hand pointer control")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dataDir, err := config.DataDir()
		if err != nil {
			log.Fatalf("Failed to prepare data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "mudra.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	screenW, screenH := cfg.ScreenWidth, cfg.ScreenHeight
	if screenW == 0 || screenH == 0 {
		screenW, screenH = pointer.ScreenSize()
	}
	log.Printf("Target display: %dx%d", screenW, screenH)

	a := app.New(app.Config{
		Settings:     cfg,
		Store:        st,
		Pointer:      pointer.NewSystemPointer(),
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	})

	srv := server.New(server.Config{
		Store:     st,
		Camera:    a.Camera(),
		Tuner:     a,
		StaticDir: findWebDir(),
	})
	a.OnEvent = srv.Events().Broadcast

	go func() {
		log.Printf("Starting control API on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnSettings(func() {
		url := settingsURL(cfg.ListenAddr)
		if err := openBrowser(url); err != nil {
			log.Printf("Failed to open settings page %s: %v", url, err)
		}
	})
	t.OnQuit(func() {
		a.Stop()
	})

	// Keep the tray's state line in step with the gesture pipeline.
	stateTicker := time.NewTicker(500 * time.Millisecond)
	defer stateTicker.Stop()
	go func() {
		for range stateTicker.C {
			t.SetState(a.State())
		}
	}()

	// Keyboard-only escape hatch in case the cursor becomes unusable.
	hk, err := hotkey.NewListener(cfg.QuitKeys, func() {
		log.Println("Quit hotkey pressed")
		a.Stop()
		t.Quit()
	})
	if err != nil {
		log.Fatalf("Failed to set up quit hotkey: %v", err)
	}
	hk.Start()
	defer hk.Stop()

	// Blocks until quit; the tray owns the main loop on every platform.
	t.Run()
}

// settingsURL builds the tuning page URL from the server listen address.
// A bare ":port" address is reachable on localhost.
func settingsURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/"
}

// openBrowser opens url in the platform default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
