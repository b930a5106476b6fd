// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"geosketch/internal/app"
	"geosketch/internal/construct"
	"geosketch/internal/render"
	"geosketch/internal/version"
	"geosketch/ui/canvas"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	canvas    *canvas.ConstructionCanvas
	statusBar *widget.Label

	recordBtn *widget.Button
	runBtn    *widget.Button
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow("GeoSketch")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas,                         // center
	)
	mw.SetContent(content)
}

// createToolbar creates the construction toolbar.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.recordBtn = widget.NewButton("Record", mw.onRecord)
	mw.runBtn = widget.NewButton("Run", mw.onRun)

	return container.NewHBox(
		widget.NewButton("Line", mw.onConnect),
		widget.NewButton("Extend", mw.onExtend),
		widget.NewButton("Circle", mw.onCircle),
		widget.NewButton("Normal", mw.onNormal),
		widget.NewButton("Intersections", mw.onIntersections),
		widget.NewButton("Label", mw.onLabel),
		widget.NewSeparator(),
		widget.NewButton("Delete", mw.onDelete),
		widget.NewButton("Delete All", mw.onDeleteAll),
		widget.NewSeparator(),
		mw.recordBtn,
		mw.runBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Diagram...", mw.onOpenDiagram),
		fyne.NewMenuItem("Save Diagram As...", mw.onSaveDiagramAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG...", mw.onExportPNG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	macroMenu := fyne.NewMenu("Macro",
		fyne.NewMenuItem("Open Macro...", mw.onOpenMacro),
		fyne.NewMenuItem("Save Macro...", mw.onSaveMacro),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Record", mw.onRecord),
		fyne.NewMenuItem("Run", mw.onRun),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, macroMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDiagramLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("GeoSketch - " + filepath.Base(path))
			mw.updateStatus("Diagram loaded: " + path)
		}
	})

	mw.state.On(app.EventDiagramSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Diagram saved: " + path)
		}
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})

	mw.state.On(app.EventRecordingChanged, func(data interface{}) {
		if recording, ok := data.(bool); ok {
			if recording {
				mw.recordBtn.SetText("Stop Record")
				mw.updateStatus("Recording macro")
			} else {
				mw.recordBtn.SetText("Record")
				mw.updateStatus(fmt.Sprintf("Recording stopped: %d commands", mw.state.Rec.Len()))
			}
		}
	})

	mw.state.On(app.EventReplayStep, func(data interface{}) {
		if step, ok := data.(app.ReplayStep); ok {
			mw.updateStatus(fmt.Sprintf("Replay %d/%d: %s", step.Index+1, step.Total, step.Command))
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// showOpError reports a failed construction: precondition failures are
// informational, everything else is an error dialog.
func (mw *MainWindow) showOpError(title string, err error) {
	if errors.Is(err, construct.ErrPrecondition) {
		dialog.ShowInformation(title, err.Error(), mw.Window)
		return
	}
	dialog.ShowError(err, mw.Window)
}

// Toolbar action handlers

func (mw *MainWindow) onConnect() {
	if err := mw.state.Connect(); err != nil {
		mw.showOpError("Line", err)
		return
	}
	mw.updateStatus("Line added")
}

func (mw *MainWindow) onExtend() {
	if err := mw.state.ExtendLines(); err != nil {
		mw.showOpError("Extend", err)
		return
	}
	mw.updateStatus("Lines extended")
}

func (mw *MainWindow) onCircle() {
	if err := mw.state.AddCircle(); err != nil {
		mw.showOpError("Circle", err)
		return
	}
	mw.updateStatus("Circle added")
}

func (mw *MainWindow) onNormal() {
	if err := mw.state.AddNormal(); err != nil {
		mw.showOpError("Normal", err)
		return
	}
	mw.updateStatus("Normal added")
}

func (mw *MainWindow) onIntersections() {
	mw.state.Intersections()
	mw.updateStatus("Intersections computed")
}

func (mw *MainWindow) onLabel() {
	if mw.state.SelectionCount() != 1 {
		dialog.ShowInformation("Label", "Select exactly one item to edit its label.", mw.Window)
		return
	}
	entry := widget.NewEntry()
	form := widget.NewForm(widget.NewFormItem("Label", entry))
	dialog.ShowCustomConfirm("Edit Label", "Apply", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		if err := mw.state.SetLabel(entry.Text); err != nil {
			mw.showOpError("Label", err)
		}
	}, mw.Window)
}

func (mw *MainWindow) onDelete() {
	if !mw.state.DeleteSelected() {
		dialog.ShowInformation("Delete", "No selected objects to delete.", mw.Window)
		return
	}
	mw.updateStatus("Selection deleted")
}

func (mw *MainWindow) onDeleteAll() {
	mw.state.DeleteAll()
	mw.updateStatus("Diagram cleared")
}

func (mw *MainWindow) onRecord() {
	mw.state.ToggleRecording()
}

func (mw *MainWindow) onRun() {
	if mw.state.Rec.Len() == 0 {
		dialog.ShowInformation("Run", "No recorded commands to run.", mw.Window)
		return
	}
	delay := mw.state.Cfg.Replay.Delay
	go mw.state.Replay(func() {
		// Pause between commands so the construction is visible. The
		// Fyne event loop keeps running while this goroutine sleeps;
		// clicks arriving during the pause serialize with the replayed
		// commands on the state's core lock.
		time.Sleep(delay)
	})
}

// Menu action handlers

func (mw *MainWindow) onOpenDiagram() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.OpenDiagram(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveDiagramAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !strings.HasSuffix(strings.ToLower(path), ".json") {
			path += ".json"
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveDiagram(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("diagram.json")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportPNG() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !strings.HasSuffix(strings.ToLower(path), ".png") {
			path += ".png"
		}
		opts := render.DefaultOptions()
		opts.Width = mw.state.Cfg.Canvas.Width
		opts.Height = mw.state.Cfg.Canvas.Height
		if err := mw.state.ExportPNG(path, opts); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported: " + path)
	}, mw.Window)
	fd.SetFileName("diagram.png")
	fd.Show()
}

func (mw *MainWindow) onOpenMacro() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.OpenMacro(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus(fmt.Sprintf("Macro loaded: %d commands", mw.state.Rec.Len()))
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".macro", ".txt"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveMacro() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		mw.saveLastDir(path)
		if err := mw.state.SaveMacro(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("session.macro")
	fd.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About GeoSketch",
		fmt.Sprintf("GeoSketch %s\n\nAn interactive compass-and-straightedge construction tool.", version.Version),
		mw.Window)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	dir := filepath.Dir(filePath)
	mw.app.Preferences().SetString(prefKeyLastDir, dir)
}
