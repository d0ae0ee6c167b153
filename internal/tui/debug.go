package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
)

// DebugLogger logs TUI state, keystrokes, and events as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	w       io.WriteCloser
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "timesynx-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	startDebugLogger(f)
	return nil
}

func startDebugLogger(w io.WriteCloser) {
	debugLog = &DebugLogger{w: w, enabled: true}
	debugLog.log("DEBUG_START", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.w != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.w.Close()
		debugLog.w = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.w == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.w, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogModeChange logs a switch between live, frozen and playing.
func LogModeChange(from, to, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   from,
		"to":     to,
		"reason": reason,
	})
}

// LogTick logs a tick and whether it was dropped as stale.
func LogTick(tag, current int, stale bool) {
	if !debugEnabled() {
		return
	}
	debugLog.log("TICK", map[string]any{
		"tag":     tag,
		"current": current,
		"stale":   stale,
	})
}

// LogCursorMove logs selection cursor movement.
func LogCursorMove(card int, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("CURSOR_MOVE", map[string]any{
		"card":   card,
		"reason": reason,
	})
}

// LogShare logs a share link and its clipboard outcome.
func LogShare(url string, err error) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{"url": url}
	if err != nil {
		data["error"] = err.Error()
	}
	debugLog.log("SHARE", data)
}

// LogError logs an error with context.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
