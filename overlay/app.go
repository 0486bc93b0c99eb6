// Package overlay runs the fyne application: the key strip and click-spot
// windows plus the system tray menu.
package overlay

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/StuckAtPrototype/KeyVisualizer/config"
	"github.com/StuckAtPrototype/KeyVisualizer/display"
)

// Callbacks are invoked from tray menu items on the UI thread.
type Callbacks struct {
	OnPauseToggle func()
	OnCopyHistory func()
	OnPreset      func(name string)
	OnReload      func()
	OnReset       func()
	OnLoginToggle func()
	OnQuit        func()
}

type App struct {
	fyneApp   fyne.App
	keysWin   fyne.Window
	spotsWin  fyne.Window
	strip     *KeyStrip
	spotLayer *SpotLayer
	callbacks Callbacks
	onReady   func()

	menu       *fyne.Menu
	desk       desktop.App
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	loginItem  *fyne.MenuItem

	cfg            config.Config
	loginEnabled   bool
	keysX, keysY   int
	spotsX, spotsY int
	visible        bool
}

func NewApp(cfg config.Config, loginEnabled bool, cb Callbacks, onReady func()) *App {
	return &App{cfg: cfg, loginEnabled: loginEnabled, callbacks: cb, onReady: onReady}
}

// Run builds the windows and tray and enters the fyne event loop. It
// returns when the app quits, or immediately with an error if the desktop
// has no tray or splash window support.
func Run(a *App) error {
	a.fyneApp = app.NewWithID("com.keyvisualizer.app")
	a.fyneApp.Settings().SetTheme(&overlayTheme{})

	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray is not supported in this environment")
	}
	a.desk = desk
	a.buildMenu()
	desk.SetSystemTrayMenu(a.menu)
	desk.SetSystemTrayIcon(fyne.NewStaticResource("keyvis.png", iconActive))

	drv, ok := a.fyneApp.Driver().(desktop.Driver)
	if !ok {
		return fmt.Errorf("desktop driver required for overlay windows")
	}

	a.strip = NewKeyStrip(StyleFromConfig(a.cfg))
	a.keysWin = drv.CreateSplashWindow()
	a.keysWin.SetContent(a.strip)
	a.keysWin.SetPadded(false)
	a.keysWin.SetFixedSize(true)

	a.spotLayer = NewSpotLayer(SpotStyleFromConfig(a.cfg))
	a.spotsWin = drv.CreateSplashWindow()
	a.spotsWin.SetContent(a.spotLayer)
	a.spotsWin.SetPadded(false)
	a.spotsWin.SetFixedSize(true)

	a.applyGeometry()

	go a.onReady()

	a.fyneApp.Run()
	return nil
}

func (a *App) buildMenu() {
	a.statusItem = fyne.NewMenuItem("Status: Active", nil)
	a.statusItem.Disabled = true

	a.pauseItem = fyne.NewMenuItem("Pause", func() {
		if a.callbacks.OnPauseToggle != nil {
			a.callbacks.OnPauseToggle()
		}
	})

	presetItems := make([]*fyne.MenuItem, 0, len(config.PresetNames))
	for _, name := range config.PresetNames {
		name := name
		presetItems = append(presetItems, fyne.NewMenuItem(name, func() {
			if a.callbacks.OnPreset != nil {
				a.callbacks.OnPreset(name)
			}
		}))
	}
	presets := fyne.NewMenuItem("Presets", nil)
	presets.ChildMenu = fyne.NewMenu("", presetItems...)

	copyItem := fyne.NewMenuItem("Copy Key History", func() {
		if a.callbacks.OnCopyHistory != nil {
			a.callbacks.OnCopyHistory()
		}
	})
	reloadItem := fyne.NewMenuItem("Reload Config", func() {
		if a.callbacks.OnReload != nil {
			a.callbacks.OnReload()
		}
	})
	resetItem := fyne.NewMenuItem("Reset to Defaults", func() {
		if a.callbacks.OnReset != nil {
			a.callbacks.OnReset()
		}
	})

	a.loginItem = fyne.NewMenuItem("Start at Login", func() {
		if a.callbacks.OnLoginToggle != nil {
			a.callbacks.OnLoginToggle()
		}
	})
	a.loginItem.Checked = a.loginEnabled

	quitItem := fyne.NewMenuItem("Quit", func() {
		if a.callbacks.OnQuit != nil {
			a.callbacks.OnQuit()
		}
	})

	a.menu = fyne.NewMenu("KeyVisualizer",
		a.statusItem,
		fyne.NewMenuItemSeparator(),
		a.pauseItem,
		presets,
		copyItem,
		reloadItem,
		resetItem,
		a.loginItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}

// applyGeometry sizes the windows from the current config. Must run on the
// UI thread.
func (a *App) applyGeometry() {
	stripH := int(stripHeight(a.cfg))
	x, y, w := stripGeometry(a.cfg, stripH)
	a.keysX, a.keysY = x, y
	a.keysWin.Resize(fyne.NewSize(float32(w), float32(stripH)))

	vx, vy, vw, vh := virtualScreen()
	a.spotsX, a.spotsY = vx, vy
	a.spotLayer.SetOrigin(vx, vy)
	a.spotsWin.Resize(fyne.NewSize(float32(vw), float32(vh)))
}

// Show makes the overlay windows visible without taking focus.
func (a *App) Show() {
	fyne.Do(func() {
		a.visible = true
		if a.cfg.ShowClickSpot {
			floatWindow(a.spotsWin, a.spotsX, a.spotsY)
		}
		floatWindow(a.keysWin, a.keysX, a.keysY)
	})
}

// floatWindow shows a window, then positions it and strips focus via the
// underlying glfw handle.
func floatWindow(win fyne.Window, x, y int) {
	win.Show()
	if glfwWin := glfw.GetCurrentContext(); glfwWin != nil {
		glfwWin.SetPos(x, y)
		glfwWin.SetAttrib(glfw.FocusOnShow, glfw.False)
		glfwWin.SetAttrib(glfw.Floating, glfw.True)
	}
}

func (a *App) Quit() {
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

// UpdateEntries pushes a new bubble snapshot to the key strip.
func (a *App) UpdateEntries(entries []display.Entry) {
	fyne.Do(func() {
		a.strip.SetEntries(entries)
	})
}

// UpdateSpots pushes a new click-spot snapshot to the spot layer.
func (a *App) UpdateSpots(spots []display.Spot) {
	fyne.Do(func() {
		a.spotLayer.SetSpots(spots)
	})
}

// SetPaused flips the tray status, pause label and icon.
func (a *App) SetPaused(paused bool) {
	fyne.Do(func() {
		if paused {
			a.statusItem.Label = "Status: Paused"
			a.pauseItem.Label = "Resume"
			a.desk.SetSystemTrayIcon(fyne.NewStaticResource("keyvis-paused.png", iconPaused))
		} else {
			a.statusItem.Label = "Status: Active"
			a.pauseItem.Label = "Pause"
			a.desk.SetSystemTrayIcon(fyne.NewStaticResource("keyvis.png", iconActive))
		}
		a.menu.Refresh()
	})
}

// SetLoginEnabled updates the Start at Login checkmark.
func (a *App) SetLoginEnabled(on bool) {
	fyne.Do(func() {
		a.loginEnabled = on
		a.loginItem.Checked = on
		a.menu.Refresh()
	})
}

// ApplyConfig restyles and repositions the overlay for a new config.
func (a *App) ApplyConfig(cfg config.Config) {
	fyne.Do(func() {
		a.cfg = cfg
		a.strip.SetStyle(StyleFromConfig(cfg))
		a.spotLayer.SetStyle(SpotStyleFromConfig(cfg))
		a.applyGeometry()
		if a.visible {
			if a.cfg.ShowClickSpot {
				floatWindow(a.spotsWin, a.spotsX, a.spotsY)
			} else {
				a.spotsWin.Hide()
			}
			floatWindow(a.keysWin, a.keysX, a.keysY)
		}
	})
}
