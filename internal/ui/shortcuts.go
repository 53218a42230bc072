// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

type shortcut struct {
	keys        string
	description string
}

var shortcutList = []shortcut{
	{"Ctrl+Q", "Quit Application"},
	{"Ctrl+N", "Add Item"},
	{"Ctrl+L", "Toggle Read Only"},
	{"Ctrl+Z", "Undo Rating"},
	{"Ctrl+Y", "Redo Rating"},
	{"Arrow Up", "Previous Log Message"},
	{"Arrow Down", "Next Log Message"},
	{"Esc", "Close Dialog"},
}

func (a *App) buildKeyboardShortcuts() {
	canvas := a.UI.MainWin.Canvas()

	// ctrl+q to quit application
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.app.Quit() })

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyN,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { canvas.Focus(a.UI.newItemEntry) })

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.UI.indicatorCheck.SetChecked(!a.UI.indicatorCheck.Checked) })

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.undo() })

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyY,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.redo() })

	canvas.SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyUp:
			a.logUIManager.ShowPreviousLogMessage()
		case fyne.KeyDown:
			a.logUIManager.ShowNextLogMessage()
		// close dialogs with esc key
		case fyne.KeyEscape:
			if len(canvas.Overlays().List()) > 0 {
				canvas.Overlays().Top().Hide()
			}
		}
	})
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcutList) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			isHeader := id.Row == 0
			if isHeader {
				label.SetText(ternaryString(id.Col == 0, "Description", "Shortcut"))
			} else {
				s := shortcutList[id.Row-1]
				label.SetText(ternaryString(id.Col == 0, s.description, s.keys))
			}
			label.TextStyle.Bold = isHeader
		},
	)
	table.SetColumnWidth(0, 250)
	table.SetColumnWidth(1, 150)
	win.SetContent(table)
	win.Resize(fyne.NewSize(400, 300))
	win.Show()
}
