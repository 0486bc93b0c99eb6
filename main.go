package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/atotto/clipboard"

	"github.com/StuckAtPrototype/KeyVisualizer/autostart"
	"github.com/StuckAtPrototype/KeyVisualizer/config"
	"github.com/StuckAtPrototype/KeyVisualizer/display"
	"github.com/StuckAtPrototype/KeyVisualizer/doctor"
	"github.com/StuckAtPrototype/KeyVisualizer/hook"
	"github.com/StuckAtPrototype/KeyVisualizer/hotkey"
	"github.com/StuckAtPrototype/KeyVisualizer/log"
	"github.com/StuckAtPrototype/KeyVisualizer/overlay"
)

var version = "dev"

const historyLimit = 50

var shutdownOnce sync.Once

func main() {
	run()
}

type engine struct {
	app      *overlay.App
	capture  *hook.Capture
	combiner *display.Combiner
	tracker  *display.Tracker
	spots    *display.SpotTracker
	pauseHk  hotkey.Hotkey

	cfg     config.Config
	cfgPath string

	paused     bool
	cmdCh      chan func()
	cfgCh      chan config.Config
	hadEntries bool
	hadSpots   bool

	historyMu   sync.Mutex
	history     []string
	keysShown   int
	clicksShown int
}

func (e *engine) gracefulShutdown() {
	shutdownOnce.Do(func() {
		e.capture.Stop()
		if e.pauseHk != nil {
			e.pauseHk.Unregister()
		}
		e.historyMu.Lock()
		keys, clicks := e.keysShown, e.clicksShown
		e.historyMu.Unlock()
		log.SessionEnd(keys, clicks)
		log.Close()
		e.app.Quit()
		os.Exit(0)
	})
}

func run() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	pausedFlag := flag.Bool("paused", false, "Start with the overlay paused")
	crashFlag := flag.Bool("crash", false, "Trigger synthetic panic for testing crash logging")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	flag.Parse()

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *crashFlag {
		panic("TEST CRASH: synthetic panic to verify crash logging")
	}

	if *versionFlag {
		fmt.Printf("KeyVisualizer %s\n", version)
		os.Exit(0)
	}

	if *doctorFlag {
		os.Exit(doctor.Run())
	}

	cfgPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve config path: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Load(cfgPath)

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	} else {
		log.SessionStart(cfg.MaxKeys, cfg.FadeSpeed, cfg.ShowClickSpot)
	}

	// autostart config and OS state can drift; config wins on startup
	if cfg.Autostart != autostart.Enabled() {
		var err error
		if cfg.Autostart {
			err = autostart.Enable()
		} else {
			err = autostart.Disable()
		}
		if err != nil {
			log.Warnf("autostart sync failed: %v", err)
		}
	}

	e := &engine{
		capture:  hook.NewCapture(),
		combiner: display.NewCombiner(),
		tracker:  display.NewTracker(cfg.MaxKeys, cfg.FadeSpeed),
		spots:    display.NewSpotTracker(time.Duration(cfg.ClickSpotFadeMs) * time.Millisecond),
		cfg:      cfg,
		cfgPath:  cfgPath,
		paused:   *pausedFlag,
		cmdCh:    make(chan func(), 8),
		cfgCh:    make(chan config.Config, 1),
	}

	e.app = overlay.NewApp(cfg, autostart.Enabled(), overlay.Callbacks{
		OnPauseToggle: func() { e.post(e.togglePause) },
		OnCopyHistory: e.copyHistory,
		OnPreset: func(name string) {
			e.post(func() {
				cfg := e.cfg
				if !config.ApplyPreset(&cfg, name) {
					return
				}
				if err := config.Save(e.cfgPath, cfg); err != nil {
					log.Errorf("config save error: %v", err)
				}
				e.applyConfig(cfg)
				log.Info("preset_applied: " + name)
			})
		},
		OnReload: func() {
			e.post(func() {
				e.applyConfig(config.Load(e.cfgPath))
				log.Info("config_reloaded")
			})
		},
		OnReset: func() {
			e.post(func() {
				cfg := config.Default()
				if err := config.Save(e.cfgPath, cfg); err != nil {
					log.Errorf("config save error: %v", err)
				}
				e.applyConfig(cfg)
				log.Info("config_reset")
			})
		},
		OnLoginToggle: func() { e.post(e.toggleLogin) },
		OnQuit:        e.gracefulShutdown,
	}, func() { e.start() })

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		e.gracefulShutdown()
	}()

	if err := overlay.Run(e.app); err != nil {
		log.Errorf("overlay error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	e.gracefulShutdown()
}

// start runs once the fyne app is up. It shows the overlay windows, starts
// the input hook and enters the event loop.
func (e *engine) start() {
	e.app.Show()
	e.app.SetPaused(e.paused)
	e.capture.Start()
	e.registerPauseHotkey(e.cfg.PauseHotkey)

	stopWatch, err := config.Watch(e.cfgPath, func(cfg config.Config) {
		select {
		case e.cfgCh <- cfg:
		default:
		}
	})
	if err != nil {
		log.Warnf("config watch error: %v", err)
	} else {
		defer stopWatch()
	}

	e.loop()
}

func (e *engine) registerPauseHotkey(combo string) {
	if e.pauseHk != nil {
		e.pauseHk.Unregister()
		e.pauseHk = nil
	}
	hk, err := hotkey.New(combo)
	if err != nil {
		log.Warnf("pause hotkey %q: %v", combo, err)
		return
	}
	if err := hk.Register(); err != nil {
		log.Warnf("pause hotkey register error: %v", err)
		return
	}
	e.pauseHk = hk
}

func (e *engine) loop() {
	ticker := time.NewTicker(display.TickInterval)
	defer ticker.Stop()

	for {
		var pauseKey <-chan struct{}
		if e.pauseHk != nil {
			pauseKey = e.pauseHk.Keydown()
		}

		select {
		case ev := <-e.capture.Events():
			if !e.paused {
				e.handleEvent(ev)
			}

		case <-ticker.C:
			e.tick()

		case <-pauseKey:
			e.togglePause()

		case cfg := <-e.cfgCh:
			e.applyConfig(cfg)
			log.Info("config_reloaded")

		case cmd := <-e.cmdCh:
			cmd()
		}
	}
}

// post schedules fn on the engine loop; tray callbacks run on the UI
// thread and must not touch engine state directly.
func (e *engine) post(fn func()) {
	select {
	case e.cmdCh <- fn:
	default:
	}
}

func (e *engine) handleEvent(ev hook.Event) {
	switch ev.Kind {
	case hook.KeyDown:
		action := e.combiner.Press(ev.Label)
		if action.Parts != nil {
			e.tracker.ShowCombo(action.Label, action.Parts)
		} else {
			e.tracker.Press(action.Label)
		}
		e.recordKey(action.Label)
		e.pushEntries()

	case hook.KeyUp:
		e.tracker.Release(e.combiner.Release(ev.Label))

	case hook.MouseDown:
		e.tracker.Press(ev.Label)
		e.recordClick(ev.Label)
		if e.cfg.ShowClickSpot {
			e.spots.Add(float64(ev.X), float64(ev.Y), ev.Label)
			e.pushSpots()
		}
		e.pushEntries()

	case hook.MouseUp:
		e.tracker.Release(ev.Label)
	}
}

func (e *engine) tick() {
	changed := e.tracker.Tick()
	if changed || e.tracker.Len() > 0 || e.hadEntries {
		e.pushEntries()
	}

	alive := e.spots.Tick()
	if alive || e.hadSpots {
		e.pushSpots()
	}
}

func (e *engine) pushEntries() {
	entries := e.tracker.Entries()
	e.hadEntries = len(entries) > 0
	e.app.UpdateEntries(entries)
}

func (e *engine) pushSpots() {
	spots := e.spots.Spots()
	e.hadSpots = len(spots) > 0
	e.app.UpdateSpots(spots)
}

func (e *engine) togglePause() {
	e.paused = !e.paused
	if e.paused {
		e.combiner.Reset()
		e.tracker.Reset()
		e.spots.Reset()
		e.pushEntries()
		e.pushSpots()
		log.Info("paused")
	} else {
		log.Info("resumed")
	}
	e.app.SetPaused(e.paused)
}

func (e *engine) toggleLogin() {
	var err error
	enable := !autostart.Enabled()
	if enable {
		err = autostart.Enable()
	} else {
		err = autostart.Disable()
	}
	if err != nil {
		log.Errorf("autostart toggle error: %v", err)
		return
	}
	e.cfg.Autostart = enable
	if err := config.Save(e.cfgPath, e.cfg); err != nil {
		log.Errorf("config save error: %v", err)
	}
	e.app.SetLoginEnabled(enable)
	log.Info(fmt.Sprintf("autostart: %v", enable))
}

func (e *engine) applyConfig(cfg config.Config) {
	prevHotkey := e.cfg.PauseHotkey
	e.cfg = cfg
	e.combiner.Reset()
	e.tracker.Configure(cfg.MaxKeys, cfg.FadeSpeed)
	e.spots.SetFade(time.Duration(cfg.ClickSpotFadeMs) * time.Millisecond)
	e.spots.Reset()
	e.pushEntries()
	e.pushSpots()
	e.app.ApplyConfig(cfg)
	if cfg.PauseHotkey != prevHotkey {
		e.registerPauseHotkey(cfg.PauseHotkey)
	}
}

// recordKey appends a shown label to the history ring. Auto-repeat
// produces the same label back to back; those are collapsed.
func (e *engine) recordKey(label string) {
	e.historyMu.Lock()
	defer e.historyMu.Unlock()
	if n := len(e.history); n > 0 && e.history[n-1] == label {
		return
	}
	e.history = append(e.history, label)
	if len(e.history) > historyLimit {
		e.history = e.history[len(e.history)-historyLimit:]
	}
	e.keysShown++
	log.HistoryText(label)
}

func (e *engine) recordClick(label string) {
	e.historyMu.Lock()
	e.clicksShown++
	e.historyMu.Unlock()
	log.HistoryText(label)
}

// copyHistory runs on the UI thread; it only touches the history ring.
func (e *engine) copyHistory() {
	e.historyMu.Lock()
	text := strings.Join(e.history, "\n")
	e.historyMu.Unlock()
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Errorf("clipboard error: %v", err)
	}
}
