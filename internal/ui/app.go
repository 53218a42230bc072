// Package ui  Setup for the StarBar demo application
package ui

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"starbar/internal/config"
	"starbar/internal/history"
	"starbar/internal/logging"
	"starbar/internal/ratingbar"
	"starbar/internal/ratings"
	"starbar/internal/service"
)

// DefaultHistorySize is the number of rating changes that can be undone.
const DefaultHistorySize = 50

// App represents the whole application with all its windows, widgets and functions
type App struct {
	app      fyne.App
	UI       UI
	settings *config.Settings

	// attrs is the template every item bar is built from.
	attrs ratingbar.Attributes

	items  []string
	bars   map[string]*ratingbar.RatingBar
	rows   map[string]fyne.CanvasObject
	values map[string]float32 // last rating each bar reported

	historyManager *history.HistoryManager

	maxLogMessages int
	logUIManager   *LogUIManager
	Service        *service.Service
}

func newApp(a fyne.App, settings *config.Settings, attrs ratingbar.Attributes) *App {
	return &App{
		app:            a,
		settings:       settings,
		attrs:          attrs,
		bars:           make(map[string]*ratingbar.RatingBar),
		rows:           make(map[string]fyne.CanvasObject),
		values:         make(map[string]float32),
		historyManager: history.NewHistoryManager(DefaultHistorySize),
		maxLogMessages: DefaultMaxLogMessages,
	}
}

// addLogMessage adds a message to the UI log display.
func (a *App) addLogMessage(message string) {
	if a.logUIManager == nil {
		log.Printf("LogUIManager not ready, console log: %s", message)
		return
	}
	a.logUIManager.AddLogMessage(message)
}

// showError reports err on the status log and in a dialog.
func (a *App) showError(err error) {
	a.addLogMessage(err.Error())
	if a.UI.MainWin != nil {
		dialog.ShowError(err, a.UI.MainWin)
	}
}

// loadItems creates a row for every rating already in the store.
func (a *App) loadItems() {
	records, err := a.Service.ListRatings()
	if err != nil {
		a.showError(fmt.Errorf("failed to list ratings: %w", err))
		return
	}
	for _, rec := range records {
		a.addItem(rec.Item)
	}
	a.refreshSummary()
}

// addItem adds a rating row for item. Items new to the store are saved at
// the bar's minimum so they show up in the summary.
func (a *App) addItem(item string) {
	item = strings.TrimSpace(item)
	if item == "" {
		a.addLogMessage("Item name is empty")
		return
	}
	if _, ok := a.bars[item]; ok {
		a.addLogMessage(fmt.Sprintf("'%s' is already listed", item))
		return
	}

	bar := a.newItemBar()
	a.values[item] = bar.Rating()
	next := ratingbar.ChangeListenerFunc(func(_ *ratingbar.RatingBar, rating float32, fromUser bool) {
		a.onItemRated(item, rating, fromUser)
	})
	if err := a.Service.Bind(item, bar, next); err != nil {
		delete(a.values, item)
		a.showError(err)
		return
	}
	if _, found, err := a.Service.GetRating(item); err == nil && !found {
		if _, err := a.Service.SetRating(item, bar.Rating(), bar.Max()); err != nil {
			a.showError(err)
		}
	}

	a.bars[item] = bar
	a.items = append(a.items, item)
	sort.Strings(a.items)
	a.rows[item] = a.buildItemRow(item, bar)
	a.layoutItems()
	a.refreshSummary()
}

// removeItem drops item from the list and from the store.
func (a *App) removeItem(item string) {
	if _, ok := a.bars[item]; !ok {
		return
	}
	if err := a.Service.RemoveRating(item); err != nil {
		a.showError(err)
		return
	}
	delete(a.bars, item)
	delete(a.rows, item)
	delete(a.values, item)
	a.historyManager.RemoveItem(item)
	for i, name := range a.items {
		if name == item {
			a.items = append(a.items[:i], a.items[i+1:]...)
			break
		}
	}
	a.layoutItems()
	a.refreshSummary()
	a.addLogMessage(fmt.Sprintf("Removed '%s'", item))
}

func (a *App) layoutItems() {
	if a.UI.itemList == nil {
		return
	}
	a.UI.itemList.RemoveAll()
	for _, item := range a.items {
		a.UI.itemList.Add(a.rows[item])
	}
	a.UI.itemList.Refresh()
}

func (a *App) newItemBar() *ratingbar.RatingBar {
	bar := ratingbar.NewWithAttributes(a.attrs)
	if size := a.settings.GetStarSize(); size > 0 {
		bar.SetStarSizeInDp(size)
	}
	bar.SetIsIndicator(a.settings.GetIndicator())
	return bar
}

// onItemRated runs after the service has handled a change on item's bar.
// Picks by the user go on the undo history.
func (a *App) onItemRated(item string, rating float32, fromUser bool) {
	before := a.values[item]
	a.values[item] = rating
	if !fromUser {
		return
	}
	a.historyManager.Record(history.Change{Item: item, Before: before, After: rating})
	a.refreshSummary()
}

// undo restores the rating from before the last user change.
func (a *App) undo() {
	c, ok := a.historyManager.Undo()
	if !ok {
		a.addLogMessage("Nothing to undo")
		return
	}
	if a.applyRating(c.Item, c.Before) {
		a.addLogMessage(fmt.Sprintf("Undo: '%s' back to %g", c.Item, c.Before))
	}
}

// redo applies the last undone change again.
func (a *App) redo() {
	c, ok := a.historyManager.Redo()
	if !ok {
		a.addLogMessage("Nothing to redo")
		return
	}
	if a.applyRating(c.Item, c.After) {
		a.addLogMessage(fmt.Sprintf("Redo: '%s' to %g", c.Item, c.After))
	}
}

// applyRating shows value on item's bar and stores it. Programmatic changes
// are not stored by the bar binding, so it is saved here.
func (a *App) applyRating(item string, value float32) bool {
	bar, ok := a.bars[item]
	if !ok {
		return false
	}
	bar.SetRating(value)
	if _, err := a.Service.SetRating(item, bar.Rating(), bar.Max()); err != nil {
		a.showError(err)
		return false
	}
	a.refreshSummary()
	return true
}

// refreshSummary shows the average of every stored rating on the read-only
// summary bar.
func (a *App) refreshSummary() {
	if a.UI.averageBar == nil {
		return
	}
	summary, err := a.Service.Summary()
	if err != nil {
		a.addLogMessage(fmt.Sprintf("Failed to summarize ratings: %v", err))
		return
	}
	a.UI.averageBar.SetMax(a.attrs.MaxStars)
	a.UI.averageBar.SetRating(float32(summary.Average))
	if summary.Count == 0 {
		a.UI.averageLabel.SetText("No ratings yet")
		return
	}
	a.UI.averageLabel.SetText(fmt.Sprintf("Average %.1f of %d items", summary.Average, summary.Count))
}

// setMaxStars changes the star count of every bar and stores it. Bars keep
// their current rating, which is re-clamped on the next change.
func (a *App) setMaxStars(count int) {
	a.settings.SetMaxStars(count)
	a.attrs.MaxStars = a.settings.GetMaxStars()
	for _, bar := range a.bars {
		bar.SetMax(a.attrs.MaxStars)
	}
	a.refreshSummary()
	a.addLogMessage(fmt.Sprintf("Showing %d stars", a.attrs.MaxStars))
}

// setStarSize resizes every bar. 0 restores the natural size.
func (a *App) setStarSize(size int) {
	a.settings.SetStarSize(size)
	size = a.settings.GetStarSize()
	for _, bar := range a.allBars() {
		bar.SetStarSizeInDp(size)
	}
}

// setIndicator makes every item bar read-only or editable.
func (a *App) setIndicator(indicator bool) {
	a.settings.SetIndicator(indicator)
	for _, bar := range a.bars {
		bar.SetIsIndicator(indicator)
	}
	a.addLogMessage(ternaryString(indicator, "Ratings locked", "Ratings unlocked"))
}

func (a *App) allBars() []*ratingbar.RatingBar {
	bars := make([]*ratingbar.RatingBar, 0, len(a.bars)+1)
	for _, item := range a.items {
		bars = append(bars, a.bars[item])
	}
	if a.UI.averageBar != nil {
		bars = append(bars, a.UI.averageBar)
	}
	return bars
}

func ternaryString(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}

var attributesFlag = flag.String("attributes", "", "TOML file with rating bar attributes (drawables, star count, spacing).")
var dbDirFlag = flag.String("db", "", "Directory holding the ratings database. Defaults to the user config directory.")

// CreateApplication is the GUI entrypoint
func CreateApplication() {
	flag.Parse()

	a := app.NewWithID("com.github.starbar")
	a.SetIcon(ratingbar.FilledStarResource)

	settings := config.NewSettings(a)
	if *dbDirFlag != "" {
		settings.SetDBDir(*dbDirFlag)
	}

	attrs := settings.Attributes()
	if *attributesFlag != "" {
		fileAttrs, err := config.LoadAttributes(*attributesFlag)
		if err != nil {
			log.Fatalf("Failed to load attributes: %v", err)
		}
		attrs = fileAttrs
	}

	ui := newApp(a, settings, attrs)

	// Messages logged before the status bar exists only reach logrus.
	appLogger := logging.Tee(logging.Default("ui"), func(message string) {
		if ui.logUIManager != nil {
			ui.logUIManager.AddLogMessage(message)
		}
	})

	db, err := ratings.NewRatingDB(settings.GetDBDir(), appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize ratings database: %v", err)
	}
	ui.Service = service.NewService(db, appLogger)

	ui.UI.MainWin = a.NewWindow("StarBar")
	ui.UI.MainWin.SetCloseIntercept(func() {
		log.Println("Closing ratings database...")
		if err := db.Close(); err != nil {
			log.Printf("Error closing ratings database: %v", err)
		}
		ui.UI.MainWin.Close()
	})
	ui.UI.MainWin.SetIcon(ratingbar.FilledStarResource)

	ui.UI.MainWin.SetContent(ui.buildMainUI())
	ui.loadItems()
	ui.addLogMessage(fmt.Sprintf("Ratings stored in %s", db.Path()))

	ui.UI.MainWin.Resize(fyne.NewSize(520, 480))
	ui.UI.MainWin.CenterOnScreen()
	ui.UI.MainWin.ShowAndRun()
}
