// internal/ui/logmanager.go
package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

const DefaultMaxLogMessages = 100

type logEntry struct {
	message string
	at      time.Time
}

// LogUIManager keeps the recent status messages and pages through them on
// the status bar.
type LogUIManager struct {
	logMessages     []logEntry
	currentLogIndex int
	maxLogMessages  int
	now             func() time.Time

	// UI elements it controls
	statusLogLabel   *widget.Label
	statusLogUpBtn   *widget.Button
	statusLogDownBtn *widget.Button
}

func NewLogUIManager(logLabel *widget.Label, upBtn, downBtn *widget.Button, maxMessages int) *LogUIManager {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxLogMessages
	}
	return &LogUIManager{
		logMessages:      make([]logEntry, 0, maxMessages),
		currentLogIndex:  -1,
		maxLogMessages:   maxMessages,
		now:              time.Now,
		statusLogLabel:   logLabel,
		statusLogUpBtn:   upBtn,
		statusLogDownBtn: downBtn,
	}
}

// AddLogMessage stores message, dropping the oldest past the limit, and
// shows it.
func (lm *LogUIManager) AddLogMessage(message string) {
	if lm == nil || lm.statusLogLabel == nil {
		return
	}
	lm.logMessages = append(lm.logMessages, logEntry{message: message, at: lm.now()})
	if len(lm.logMessages) > lm.maxLogMessages {
		lm.logMessages = lm.logMessages[len(lm.logMessages)-lm.maxLogMessages:]
	}
	lm.currentLogIndex = len(lm.logMessages) - 1
	lm.UpdateLogDisplay()
}

// Messages returns the stored messages, oldest first.
func (lm *LogUIManager) Messages() []string {
	messages := make([]string, len(lm.logMessages))
	for i, e := range lm.logMessages {
		messages[i] = e.message
	}
	return messages
}

func (lm *LogUIManager) UpdateLogDisplay() {
	if lm.statusLogLabel == nil || lm.statusLogUpBtn == nil || lm.statusLogDownBtn == nil {
		return
	}
	if len(lm.logMessages) == 0 {
		lm.statusLogLabel.SetText("")
		lm.statusLogUpBtn.Disable()
		lm.statusLogDownBtn.Disable()
		return
	}

	if lm.currentLogIndex < 0 {
		lm.currentLogIndex = 0
	} else if lm.currentLogIndex >= len(lm.logMessages) {
		lm.currentLogIndex = len(lm.logMessages) - 1
	}

	entry := lm.logMessages[lm.currentLogIndex]
	lm.statusLogLabel.SetText(fmt.Sprintf("[%d/%d] %s (%s)", lm.currentLogIndex+1, len(lm.logMessages),
		entry.message, humanize.RelTime(entry.at, lm.now(), "ago", "from now")))
	if lm.currentLogIndex <= 0 {
		lm.statusLogUpBtn.Disable()
	} else {
		lm.statusLogUpBtn.Enable()
	}
	if lm.currentLogIndex >= len(lm.logMessages)-1 {
		lm.statusLogDownBtn.Disable()
	} else {
		lm.statusLogDownBtn.Enable()
	}
}

func (lm *LogUIManager) ShowPreviousLogMessage() {
	if lm == nil || len(lm.logMessages) == 0 || lm.currentLogIndex <= 0 {
		return
	}
	lm.currentLogIndex--
	lm.UpdateLogDisplay()
}

func (lm *LogUIManager) ShowNextLogMessage() {
	if lm == nil || len(lm.logMessages) == 0 || lm.currentLogIndex >= len(lm.logMessages)-1 {
		return
	}
	lm.currentLogIndex++
	lm.UpdateLogDisplay()
}
