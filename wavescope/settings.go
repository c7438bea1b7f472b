package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/wavescope/pkg/palette"
)

// showSettingsDialog displays a settings dialog with tabs for the
// configuration options. Submitted changes are saved to the config
// file and applied live where possible.
func (v *viewer) showSettingsDialog() {
	tabs := container.NewAppTabs(
		v.createColorsTab(),
		v.createViewTab(),
		v.createPlaybackTab(),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	content.Resize(fyne.NewSize(480, 380))

	d := dialog.NewCustom("Settings", "Close", content, v.window)
	d.Resize(fyne.NewSize(480, 380))
	d.Show()
}

// createColorsTab creates the color configuration tab. Colors are
// chosen from the fixed palette by name.
func (v *viewer) createColorsTab() *container.TabItem {
	names := make([]string, len(palette.Table))
	hexByName := make(map[string]string, len(palette.Table))
	for i, e := range palette.Table {
		label := fmt.Sprintf("%s (%s)", e.Name, e.Hex)
		names[i] = label
		hexByName[label] = e.Hex
	}

	selectFor := func(current string) *widget.Select {
		sel := widget.NewSelect(names, func(string) {})
		for _, e := range palette.Table {
			if e.Hex == current {
				sel.SetSelected(fmt.Sprintf("%s (%s)", e.Name, e.Hex))
				break
			}
		}
		return sel
	}

	bgSelect := selectFor(v.cfg.Colors.Background)
	posSelect := selectFor(v.cfg.Colors.Positive)
	negSelect := selectFor(v.cfg.Colors.Negative)

	pick := func(sel *widget.Select, current string) string {
		if hex, ok := hexByName[sel.Selected]; ok {
			return hex
		}
		return current
	}

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Background", Widget: bgSelect},
			{Text: "Positive wave", Widget: posSelect},
			{Text: "Negative wave", Widget: negSelect},
		},
		OnSubmit: func() {
			v.cfg.Colors.Background = pick(bgSelect, v.cfg.Colors.Background)
			v.cfg.Colors.Positive = pick(posSelect, v.cfg.Colors.Positive)
			v.cfg.Colors.Negative = pick(negSelect, v.cfg.Colors.Negative)

			if err := v.cfg.Save(v.configPath); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save config: %w", err), v.window)
				return
			}

			v.bgRect.FillColor = palette.MustHex(v.cfg.Colors.Background)
			v.bgRect.Refresh()
			v.scope.SetTraceColors(
				palette.MustHex(v.cfg.Colors.Positive),
				palette.MustHex(v.cfg.Colors.Negative),
			)
		},
	}

	return container.NewTabItem("Colors", form)
}

// createViewTab creates the zoom and window geometry tab. Slider
// bounds apply on the next start.
func (v *viewer) createViewTab() *container.TabItem {
	minEntry := widget.NewEntry()
	minEntry.SetText(strconv.Itoa(v.cfg.View.SliderMin))

	maxEntry := widget.NewEntry()
	maxEntry.SetText(strconv.Itoa(v.cfg.View.SliderMax))

	defEntry := widget.NewEntry()
	defEntry.SetText(strconv.Itoa(v.cfg.View.SliderDefault))

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.0f", v.cfg.View.WindowWidth))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.0f", v.cfg.View.WindowHeight))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Zoom minimum", Widget: minEntry},
			{Text: "Zoom maximum", Widget: maxEntry},
			{Text: "Zoom default", Widget: defEntry},
			{Text: "Window width", Widget: widthEntry},
			{Text: "Window height", Widget: heightEntry},
		},
		OnSubmit: func() {
			if n, err := strconv.Atoi(minEntry.Text); err == nil && n > 0 {
				v.cfg.View.SliderMin = n
			}
			if n, err := strconv.Atoi(maxEntry.Text); err == nil && n > 0 {
				v.cfg.View.SliderMax = n
			}
			if n, err := strconv.Atoi(defEntry.Text); err == nil && n > 0 {
				v.cfg.View.SliderDefault = n
			}
			if f, err := strconv.ParseFloat(widthEntry.Text, 32); err == nil && f > 0 {
				v.cfg.View.WindowWidth = float32(f)
			}
			if f, err := strconv.ParseFloat(heightEntry.Text, 32); err == nil && f > 0 {
				v.cfg.View.WindowHeight = float32(f)
			}
			if err := v.cfg.Save(v.configPath); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save config: %w", err), v.window)
			}
		},
	}

	return container.NewTabItem("View", form)
}

// createPlaybackTab creates the playback tab (playhead poll interval).
func (v *viewer) createPlaybackTab() *container.TabItem {
	intervalEntry := widget.NewEntry()
	intervalEntry.SetText(v.cfg.Playhead.Interval.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Playhead interval", Widget: intervalEntry},
		},
		OnSubmit: func() {
			v.applyPlayheadInterval(intervalEntry.Text)
			if err := v.cfg.Save(v.configPath); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save config: %w", err), v.window)
			}
		},
	}

	return container.NewTabItem("Playback", form)
}

// applyPlayheadInterval parses text as a duration, stores it in the
// config and retimes the running playhead ticker. Invalid or
// non-positive values leave both untouched.
func (v *viewer) applyPlayheadInterval(text string) bool {
	d, err := time.ParseDuration(text)
	if err != nil || d <= 0 {
		return false
	}

	v.cfg.Playhead.Interval = d
	if v.ticker != nil {
		v.ticker.Reset(d)
	}
	return true
}
