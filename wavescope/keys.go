package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// installKeyHandlers wires the hotkeys: P toggles playback, holding a
// digit 1-9 decimates the display and releasing it restores full
// resolution. Release events need the desktop driver; elsewhere only
// the toggle works.
func (v *viewer) installKeyHandlers() {
	if dc, ok := v.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(v.onKeyDown)
		dc.SetOnKeyUp(v.onKeyUp)
		return
	}

	v.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyP {
			v.togglePlayback()
		}
	})
}

func (v *viewer) onKeyDown(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyP {
		v.togglePlayback()
		return
	}
	if f := digitFactor(ev.Name); f > 0 {
		v.scope.SetFactor(f)
	}
}

func (v *viewer) onKeyUp(ev *fyne.KeyEvent) {
	if digitFactor(ev.Name) > 0 {
		v.scope.SetFactor(1)
	}
}

// digitFactor maps the digit keys to their decimation factor, 0 for
// any other key.
func digitFactor(name fyne.KeyName) int {
	switch name {
	case fyne.Key1:
		return 1
	case fyne.Key2:
		return 2
	case fyne.Key3:
		return 3
	case fyne.Key4:
		return 4
	case fyne.Key5:
		return 5
	case fyne.Key6:
		return 6
	case fyne.Key7:
		return 7
	case fyne.Key8:
		return 8
	case fyne.Key9:
		return 9
	}
	return 0
}
