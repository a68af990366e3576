package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/penwyp/go-viewport-monitor/internal/application/export"
	"github.com/penwyp/go-viewport-monitor/internal/core/device"
	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/threshold"
	"github.com/penwyp/go-viewport-monitor/internal/core/viewport"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/display"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/interaction"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/layout"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Dependencies are the collaborators of the orchestrator. Optional terminal
// facing fields are created on Run when left nil.
type Dependencies struct {
	Observer   *viewport.Observer
	Thresholds *threshold.Manager
	UserAgent  string

	Display DisplayController
	Input   InputHandler
	Files   FileMonitor
	Resize  <-chan struct{}
	Now     func() time.Time
}

// Orchestrator coordinates all components for the watch command
type Orchestrator struct {
	config *WatchConfig

	// Core components
	observer     *viewport.Observer
	thresholds   *threshold.Manager
	exporter     *export.Exporter
	stateManager *StateManager
	presets      []model.DevicePreset
	userAgent    string
	now          func() time.Time

	// UI components
	display  DisplayController
	keyboard InputHandler

	// Event sources
	watcher FileMonitor
	resize  <-chan struct{}
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *WatchConfig, deps Dependencies) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Observer == nil || deps.Thresholds == nil {
		return nil, fmt.Errorf("observer and thresholds are required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}
	termDisplay := deps.Display
	if termDisplay == nil {
		termDisplay = display.NewTerminalDisplay(os.Stdout)
	}

	o := &Orchestrator{
		config:       config,
		observer:     deps.Observer,
		thresholds:   deps.Thresholds,
		exporter:     export.NewExporter(config.ExportDir),
		stateManager: NewStateManager(),
		presets:      model.DevicePresets(),
		userAgent:    deps.UserAgent,
		now:          now,
		display:      termDisplay,
		keyboard:     deps.Input,
		watcher:      deps.Files,
		resize:       deps.Resize,
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.LayoutStyle = config.LayoutStyle % layout.LayoutCount
	})
	return o, nil
}

// Run starts the orchestrator main loop
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting viewport watch...")

	if err := util.InitializeTimeProvider(o.config.Timezone); err != nil {
		return fmt.Errorf("failed to initialize timezone: %w", err)
	}

	// Phase 1: Initialize keyboard
	if o.keyboard == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.keyboard = keyboard
	}
	defer o.keyboard.Close()

	// Enter alternate screen mode
	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	// Phase 2: Load state and take the startup sample
	unsubscribe := o.observer.Subscribe(o.onUpdate)
	defer unsubscribe()

	o.thresholds.Load(ctx)
	if _, err := o.observer.Start(ctx); err != nil {
		util.LogWarnf("Startup sample not recorded: %v", err)
	}

	// Phase 3: Start event sources
	if o.resize == nil {
		o.resize = viewport.ResizeEvents(ctx)
	}
	o.startWatcher()
	var fileEvents <-chan model.FileEvent
	if o.watcher != nil {
		defer o.watcher.Close()
		fileEvents = o.watcher.Events()
	}

	// Phase 4: Main event loop
	uiTicker := time.NewTicker(o.config.UIRefreshInterval)
	defer uiTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down viewport watch...")
			return nil

		case _, ok := <-o.resize:
			if !ok {
				o.resize = nil
				continue
			}
			o.sample(ctx)
			o.updateDisplay()

		case <-uiTicker.C:
			o.updateDisplay()

		case event := <-fileEvents:
			o.handleFileChange(ctx, event)
			o.updateDisplay()

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(ctx, keyEvent) {
				return nil // Exit requested
			}
			o.updateDisplay()
		}
	}
}

func (o *Orchestrator) startWatcher() {
	if o.watcher != nil || len(o.config.ThresholdFiles) == 0 {
		return
	}
	watcher, err := NewFileWatcher(o.config.ThresholdFiles)
	if err != nil {
		util.LogWarnf("Threshold hot reload disabled: %v", err)
		return
	}
	o.watcher = watcher
}

func (o *Orchestrator) onUpdate(u viewport.Update) {
	o.stateManager.SetViewport(u.Current, u.History)
	if u.Err != nil {
		o.stateManager.SetStatusMessage("History not saved: " + u.Err.Error())
	}
}

func (o *Orchestrator) sample(ctx context.Context) {
	if _, err := o.observer.SampleNow(ctx); err != nil {
		util.LogError(fmt.Sprintf("Sample failed: %v", err))
	}
}

func (o *Orchestrator) handleFileChange(ctx context.Context, event model.FileEvent) {
	util.LogDebugf("Threshold file changed: %s (%s)", event.Path, event.Operation)
	t := o.thresholds.Load(ctx)
	o.stateManager.SetStatusMessage(fmt.Sprintf("Thresholds reloaded: width %d-%d, height %d-%d",
		t.MinWidth, t.MaxWidth, t.MinHeight, t.MaxHeight))
}

// ViewportData snapshots the state for formatters and exports
func (o *Orchestrator) ViewportData() formatter.ViewportData {
	current, _, history := o.stateManager.GetViewport()
	t := o.thresholds.Current()
	return formatter.ViewportData{
		Current:    current,
		History:    history,
		HistoryCap: o.observer.HistoryCap(),
		Thresholds: t,
		Status:     threshold.Check(t, current.Width, current.Height),
		Rankings:   device.RankObservation(current, o.presets),
		Presets:    o.presets,
		UserAgent:  o.userAgent,
		Now:        o.now(),
	}
}

func (o *Orchestrator) buildView() layout.View {
	current, hasCurrent, history := o.stateManager.GetViewport()
	t := o.thresholds.Current()
	view := layout.View{
		Current:    current,
		HasCurrent: hasCurrent,
		History:    history,
		HistoryCap: o.observer.HistoryCap(),
		Thresholds: t,
		Now:        o.now(),
	}
	if hasCurrent {
		view.Status = threshold.Check(t, current.Width, current.Height)
		view.Rankings = device.RankObservation(current, o.presets)
	}
	return view
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	o.display.RenderWithState(o.buildView(), o.stateManager.GetInteractionState())
}

// handleKeyboard handles keyboard events and reports whether to exit
func (o *Orchestrator) handleKeyboard(ctx context.Context, event interaction.KeyEvent) bool {
	state := o.stateManager.GetInteractionState()

	// Handle confirm dialog inputs first
	if state.ConfirmDialog != nil {
		switch event.Type {
		case interaction.KeyChar:
			switch event.Key {
			case 'y', 'Y':
				if state.ConfirmDialog.OnConfirm != nil {
					state.ConfirmDialog.OnConfirm()
				}
				o.display.ClearScreen()
			case 'n', 'N':
				if state.ConfirmDialog.OnCancel != nil {
					state.ConfirmDialog.OnCancel()
				}
				o.display.ClearScreen()
			}
		case interaction.KeyEscape:
			if state.ConfirmDialog.OnCancel != nil {
				state.ConfirmDialog.OnCancel()
			}
			o.display.ClearScreen()
		}
		return false // Ignore other keys when dialog is open
	}

	switch event.Type {
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 'Q', interaction.KeyCtrlC:
			return true
		case 's', 'S':
			o.sample(ctx)
			o.stateManager.SetStatusMessage("Sampled viewport")
		case 'c', 'C':
			o.clearHistory(ctx)
		case 'e', 'E':
			o.exportAs(model.FormatReport)
		case 'v', 'V':
			o.exportAs(model.FormatCSV)
		case 'h', 'H':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = !s.ShowHelp
			})
		case 't', 'T':
			// Cycle through layout styles
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.LayoutStyle = (s.LayoutStyle + 1) % layout.LayoutCount
			})
		}
	case interaction.KeyEscape:
		// If help is shown, close it; otherwise quit
		if state.ShowHelp {
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = false
			})
		} else {
			return true
		}
	}

	return false
}

// clearHistory asks for confirmation, then deletes the stored history
func (o *Orchestrator) clearHistory(ctx context.Context) {
	closeDialog := func() {
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ConfirmDialog = nil
		})
	}

	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.ConfirmDialog = &model.ConfirmDialog{
			Title:   "Clear History",
			Message: "This will delete every recorded viewport observation. Continue?",
			OnConfirm: func() {
				closeDialog()
				if err := o.observer.ClearHistory(ctx); err != nil {
					util.LogError(fmt.Sprintf("Failed to clear history: %v", err))
					o.stateManager.SetStatusMessage("Clear failed: " + err.Error())
					return
				}
				o.stateManager.SetHistory(o.observer.History())
				o.stateManager.SetStatusMessage("History cleared")
			},
			OnCancel: closeDialog,
		}
	})
}

func (o *Orchestrator) exportAs(format string) {
	path, err := o.exporter.Export(format, o.ViewportData())
	if err != nil {
		util.LogError(fmt.Sprintf("Export failed: %v", err))
		o.stateManager.SetStatusMessage("Export failed: " + err.Error())
		return
	}
	o.stateManager.SetStatusMessage("Saved " + path)
}
