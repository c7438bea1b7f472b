package main

import (
	"flag"
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/wavescope/pkg/audio"
	"github.com/itohio/wavescope/pkg/config"
	"github.com/itohio/wavescope/pkg/palette"
	"github.com/itohio/wavescope/pkg/player"
	"github.com/itohio/wavescope/pkg/scope"
)

func main() {
	var (
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		colorsFlag = flag.Bool("colors", false, "Choose display colors interactively before starting")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Terminal color picker runs before the window opens
	if *colorsFlag {
		chooseColors(cfg)
	}

	// Create Fyne application
	application := app.NewWithID("com.itohio.wavescope")

	// Create main window
	window := application.NewWindow("Waveform Viewer & Player")
	window.Resize(fyne.NewSize(cfg.View.WindowWidth, cfg.View.WindowHeight))
	window.CenterOnScreen()

	v := &viewer{
		cfg:        cfg,
		configPath: *configFlag,
		app:        application,
		window:     window,
		codecs:     newRegistry(),
	}

	// Scope widget owns the render cache and view state
	v.scope = scope.New(cfg)

	// Zoom slider: midpoint shows the whole clip
	v.slider = widget.NewSlider(float64(cfg.View.SliderMin), float64(cfg.View.SliderMax))
	v.slider.Step = 1
	v.slider.SetValue(float64(cfg.View.SliderDefault))
	v.slider.OnChanged = func(val float64) {
		v.scope.SetZoom(int(val))
	}

	v.bgRect = canvas.NewRectangle(palette.MustHex(cfg.Colors.Background))

	content := container.NewStack(
		v.bgRect,
		container.NewBorder(
			v.createToolbar(),
			v.slider,
			nil,
			nil,
			v.scope,
		),
	)
	window.SetContent(content)

	v.installKeyHandlers()
	v.startPlayheadTicker()

	// File comes either from the command line or a dialog; with
	// neither a selection nor an argument the program exits cleanly.
	if path := flag.Arg(0); path != "" {
		if err := v.open(path); err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
	} else {
		v.promptOpen(true)
	}

	window.ShowAndRun()
}

// viewer holds the application state. It replaces ambient globals: UI
// callbacks receive it explicitly.
type viewer struct {
	cfg        *config.Config
	configPath string
	app        fyne.App
	window     fyne.Window
	codecs     *audio.Registry

	scope   *scope.Widget
	slider  *widget.Slider
	bgRect  *canvas.Rectangle
	playBtn *widget.Button
	ticker  *time.Ticker

	// player is written by open() on the event loop and read by the
	// playhead ticker goroutine; playerMu guards the pointer.
	playerMu sync.Mutex
	player   *player.Player
	playing  bool
}

// currentPlayer returns the active player, nil before the first load.
func (v *viewer) currentPlayer() *player.Player {
	v.playerMu.Lock()
	defer v.playerMu.Unlock()
	return v.player
}

// swapPlayer installs p and returns the previous player so the caller
// can close it after the swap. The ticker goroutine never observes a
// pointer that open() has already closed.
func (v *viewer) swapPlayer(p *player.Player) *player.Player {
	v.playerMu.Lock()
	old := v.player
	v.player = p
	v.playerMu.Unlock()
	return old
}

// createToolbar creates the toolbar with Open, Play/Pause and Settings
// buttons plus the hotkey hint.
func (v *viewer) createToolbar() fyne.CanvasObject {
	openBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		v.promptOpen(false)
	})

	playBtn := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		v.togglePlayback()
	})
	playBtn.Disable()
	v.playBtn = playBtn

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		v.showSettingsDialog()
	})

	hint := widget.NewLabelWithStyle("P = Play/Pause", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	return container.NewBorder(
		nil, // top
		nil, // bottom
		container.NewHBox(openBtn, playBtn, settingsBtn), // left
		hint, // right
		nil,  // center (spacer)
	)
}

// promptOpen shows the file dialog. When quitOnCancel is set (startup
// without a file argument) dismissing the dialog ends the program.
func (v *viewer) promptOpen(quitOnCancel bool) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if rc == nil {
			if quitOnCancel {
				log.Println("No file selected. Exiting.")
				v.app.Quit()
			}
			return
		}
		path := rc.URI().Path()
		rc.Close()
		if err := v.open(path); err != nil {
			dialog.ShowError(err, v.window)
		}
	}, v.window)
	fd.SetFilter(storage.NewExtensionFileFilter(v.codecs.Extensions()))
	fd.Show()
}

// open loads a clip and swaps it into the scope and the player. The
// previous clip's decimation cache goes away with its buffer.
func (v *viewer) open(path string) error {
	buf, err := v.loadClip(path)
	if err != nil {
		return err
	}

	p, err := player.New(buf.Samples(), buf.SampleRate())
	if err != nil {
		return err
	}
	if old := v.swapPlayer(p); old != nil {
		old.Close()
	}
	v.playing = false

	v.scope.SetBuffer(buf)
	v.slider.SetValue(float64(v.cfg.View.SliderDefault))
	v.playBtn.Enable()
	v.playBtn.SetIcon(theme.MediaPlayIcon())
	v.window.SetTitle("Waveform Viewer & Player - " + filepath.Base(path))

	log.Printf("Loaded %s: %d samples at %d Hz (%.2fs)",
		filepath.Base(path), buf.Len(), buf.SampleRate(), buf.Duration())
	return nil
}

// togglePlayback flips play/pause and keeps the button icon in sync.
func (v *viewer) togglePlayback() {
	p := v.currentPlayer()
	if p == nil {
		return
	}

	v.playing = p.Toggle()
	if v.playing {
		v.playBtn.SetIcon(theme.MediaPauseIcon())
		v.scope.SetPlayhead(p.Position().Seconds(), true)
	} else {
		v.playBtn.SetIcon(theme.MediaPlayIcon())
	}
}

// startPlayheadTicker starts the fixed-interval poll that moves the
// playhead marker while a clip plays. The ticker runs for the life of
// the process; UI mutations go through fyne.Do.
func (v *viewer) startPlayheadTicker() {
	v.ticker = time.NewTicker(v.cfg.Playhead.Interval)
	go func() {
		for range v.ticker.C {
			p := v.currentPlayer()
			if p == nil {
				continue
			}
			pos := p.Position().Seconds()
			finished := p.Finished()

			fyne.Do(func() {
				if !v.playing {
					return
				}
				if finished {
					// Clip ran out: reset for the next play
					v.playing = false
					v.playBtn.SetIcon(theme.MediaPlayIcon())
					v.scope.SetPlayhead(0, false)
					if err := p.Rewind(); err != nil {
						log.Printf("rewind failed: %v", err)
					}
					return
				}
				v.scope.SetPlayhead(pos, true)
			})
		}
	}()
}
