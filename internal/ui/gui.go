package ui

import (
	"fmt"
	"runtime"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"starbar/internal/ratingbar"
)

// UI holds the widgets the App updates after it is built
type UI struct {
	MainWin    fyne.Window
	mainModKey fyne.KeyModifier

	itemList     *fyne.Container
	newItemEntry *widget.Entry

	averageBar   *ratingbar.RatingBar
	averageLabel *widget.Label

	maxStarsSelect *widget.Select
	starSizeSelect *widget.Select
	indicatorCheck *widget.Check

	statusLogLabel   *widget.Label
	statusLogUpBtn   *widget.Button
	statusLogDownBtn *widget.Button
	statusBar        *fyne.Container
}

func (a *App) buildItemRow(item string, bar *ratingbar.RatingBar) fyne.CanvasObject {
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { a.removeItemCheck(item) })
	return container.NewBorder(nil, nil, widget.NewLabel(item), remove, container.NewHBox(bar))
}

func (a *App) removeItemCheck(item string) {
	dialog.ShowConfirm("Remove rating", fmt.Sprintf("Remove '%s' and its rating?", item), func(b bool) {
		if b {
			a.removeItem(item)
		}
	}, a.UI.MainWin)
}

func (a *App) buildAddItemRow() fyne.CanvasObject {
	a.UI.newItemEntry = widget.NewEntry()
	a.UI.newItemEntry.SetPlaceHolder("Item to rate")
	submit := func() {
		a.addItem(a.UI.newItemEntry.Text)
		a.UI.newItemEntry.SetText("")
	}
	a.UI.newItemEntry.OnSubmitted = func(string) { submit() }
	add := widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), submit)
	return container.NewBorder(nil, nil, nil, add, a.UI.newItemEntry)
}

func (a *App) buildSummaryRow() fyne.CanvasObject {
	attrs := a.attrs
	attrs.MinStars = 0
	attrs.StarsSelected = nil
	a.UI.averageBar = ratingbar.NewWithAttributes(attrs)
	a.UI.averageBar.SetIsIndicator(true)
	if size := a.settings.GetStarSize(); size > 0 {
		a.UI.averageBar.SetStarSizeInDp(size)
	}
	a.UI.averageLabel = widget.NewLabel("No ratings yet")
	return container.NewHBox(a.UI.averageBar, a.UI.averageLabel)
}

func (a *App) buildSettingsRow() fyne.CanvasObject {
	a.UI.maxStarsSelect = widget.NewSelect(intOptions(a.settings.GetMaxStarsOptions()), func(s string) {
		if count, err := strconv.Atoi(s); err == nil && count != a.attrs.MaxStars {
			a.setMaxStars(count)
		}
	})
	a.UI.maxStarsSelect.SetSelected(strconv.Itoa(a.attrs.MaxStars))

	sizes := intOptions(a.settings.GetStarSizeOptions())
	sizes[0] = "Natural"
	a.UI.starSizeSelect = widget.NewSelect(sizes, func(s string) {
		size, err := strconv.Atoi(s)
		if err != nil {
			size = 0
		}
		if size != a.settings.GetStarSize() {
			a.setStarSize(size)
		}
	})
	if size := a.settings.GetStarSize(); size > 0 {
		a.UI.starSizeSelect.SetSelected(strconv.Itoa(size))
	} else {
		a.UI.starSizeSelect.SetSelected("Natural")
	}

	a.UI.indicatorCheck = widget.NewCheck("Read only", func(b bool) {
		if b != a.settings.GetIndicator() {
			a.setIndicator(b)
		}
	})
	a.UI.indicatorCheck.SetChecked(a.settings.GetIndicator())

	return container.NewHBox(
		widget.NewLabel("Stars"), a.UI.maxStarsSelect,
		widget.NewLabel("Size"), a.UI.starSizeSelect,
		a.UI.indicatorCheck,
	)
}

func intOptions(values []int) []string {
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}
	return options
}

func (a *App) buildStatusBar() *fyne.Container {
	a.UI.statusLogLabel = widget.NewLabel("")
	a.UI.statusLogLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusLogUpBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		a.logUIManager.ShowPreviousLogMessage()
	})
	a.UI.statusLogDownBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		a.logUIManager.ShowNextLogMessage()
	})
	a.logUIManager = NewLogUIManager(a.UI.statusLogLabel, a.UI.statusLogUpBtn, a.UI.statusLogDownBtn, a.maxLogMessages)
	a.logUIManager.UpdateLogDisplay()

	a.UI.statusBar = container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil,
			container.NewHBox(a.UI.statusLogUpBtn, a.UI.statusLogDownBtn),
			a.UI.statusLogLabel,
		),
	)
	return a.UI.statusBar
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Add Item", func() { a.UI.MainWin.Canvas().Focus(a.UI.newItemEntry) }),
		),
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Undo Rating", a.undo),
			fyne.NewMenuItem("Redo Rating", a.redo),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				NewAbout(&a.UI.MainWin, "About StarBar", ratingbar.FilledStarResource).Show()
			}),
		),
	)
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.UI.MainWin.SetMaster()
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}
	status := a.buildStatusBar()

	a.UI.itemList = container.NewVBox()
	top := container.NewVBox(
		a.buildSettingsRow(),
		a.buildSummaryRow(),
		widget.NewSeparator(),
		a.buildAddItemRow(),
	)

	a.UI.MainWin.SetMainMenu(a.buildMainMenu())
	a.buildKeyboardShortcuts()

	return container.NewBorder(
		top,    // Top
		status, // Bottom
		nil,
		nil,
		container.NewVScroll(container.NewVBox(a.UI.itemList, layout.NewSpacer())),
	)
}
