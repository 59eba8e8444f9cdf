package widgetlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two consecutive redraws caused by resizing.
	redrawPause = 50 * time.Millisecond
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseScrollUp
	MouseScrollDown
)

// queuedUpdate is a function queued by Application.QueueUpdate. If done is not
// nil, it receives exactly one element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen and runs the event loop. Events are routed to
// the root primitive, and the commands it returns are executed before the
// next event is read.
//
//	app := widgetlist.NewApplication().SetRoot(list)
//	if err := app.Run(ctx); err != nil {
//	    return err
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	logger *slog.Logger

	// The primitive which currently has the keyboard focus.
	focus Primitive
	root  Primitive

	updates chan queuedUpdate

	mouseCapture           Primitive
	lastMouseX, lastMouseY int
	mouseDownX, mouseDownY int
	lastMouseClick         time.Time
	lastMouseButtons       tcell.ButtonMask

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		logger:  slog.Default(),
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the screen used by Run. By default a terminal screen is
// created.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetLogger sets the logger used for event loop diagnostics.
func (a *Application) SetLogger(logger *slog.Logger) *Application {
	a.logger = logger
	return a
}

// Run starts the event loop. It returns when [Application.Stop] is called, a
// [QuitCommand] is executed, the screen reports an error, or ctx is done.
func (a *Application) Run(ctx context.Context) error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err := screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		screen.EnableMouse()
		screen.EnablePaste()
		a.screen = screen
	}
	screen := a.screen
	a.Unlock()

	// A panic leaves the terminal in raw mode unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var (
		events      = screen.EventQ()
		lastRedraw  time.Time
		redrawTimer *time.Timer
		pasteBuffer strings.Builder
		pasting     bool
	)
	for {
		select {
		case <-ctx.Done():
			a.Stop()
			return nil

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}

		case event := <-events:
			if event == nil {
				return nil
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				// Keys received while pasting are collected, not handled.
				if pasting {
					switch event.Key() {
					case tcell.KeyRune:
						pasteBuffer.WriteString(event.Str())
					case tcell.KeyEnter:
						pasteBuffer.WriteByte('\n')
					case tcell.KeyTab:
						pasteBuffer.WriteByte('\t')
					}
					break
				}
				if root := a.getRoot(); root != nil && root.HasFocus() {
					a.handle(root.InputHandler(event))
				}

			case *tcell.EventPaste:
				switch {
				case event.Start():
					pasting = true
					pasteBuffer.Reset()
				case event.End():
					pasting = false
					if root := a.getRoot(); root != nil && root.HasFocus() && pasteBuffer.Len() > 0 {
						a.handle(root.PasteHandler(pasteBuffer.String()))
					}
				}

			case *tcell.EventResize:
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastRedraw) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, func() {
						a.updates <- queuedUpdate{f: a.draw}
					})
				}
				lastRedraw = time.Now()
				a.draw()

			case *tcell.EventMouse:
				handled, down := a.fireMouseActions(event)
				if handled {
					a.draw()
				}
				a.lastMouseButtons = event.Buttons()
				if down {
					a.mouseDownX, a.mouseDownY = event.Position()
				}

			case *tcell.EventError:
				a.logger.Error("screen error", "err", event)
				a.Stop()
				return event
			}
		}

		a.RLock()
		stopped := a.screen == nil
		a.RUnlock()
		if stopped {
			return nil
		}
	}
}

func (a *Application) getRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.root
}

// handle executes cmd and redraws if it asked for it.
func (a *Application) handle(cmd Command) {
	if a.executeCommand(cmd) {
		a.draw()
	}
}

// fireMouseActions derives mouse actions from the event and forwards them to
// the root primitive, or to the primitive capturing the mouse.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, down bool) {
	fire := func(action MouseAction) {
		if action == MouseLeftDown {
			down = true
		}
		target := a.mouseCapture
		if target == nil {
			target = a.getRoot()
		}
		if target == nil {
			return
		}
		capture, cmd := target.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			handled = true
		}
		a.mouseCapture = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX, a.lastMouseY = x, y
	}

	if (buttons^a.lastMouseButtons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			fire(MouseLeftDown)
		} else {
			fire(MouseLeftUp)
			if x == a.mouseDownX && y == a.mouseDownY {
				if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
					fire(MouseLeftClick)
					a.lastMouseClick = time.Now()
				} else {
					fire(MouseLeftDoubleClick)
					a.lastMouseClick = time.Time{}
				}
			}
		}
	}

	if buttons&tcell.WheelUp != 0 {
		fire(MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		fire(MouseScrollDown)
	}
	return handled, down
}

// Stop finalizes the screen, causing Run to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw queues a redraw of the screen. It must not be called from the event
// loop goroutine, for example in a list callback, as it would deadlock.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only emits changed cells on Show; a full clear is reserved for
	// resizes and root changes.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the root primitive and gives it the focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus moves the focus to p. Blur is called on the previously focused
// primitive and Focus on p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the primitive which has the current focus, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop goroutine and returns after f has
// executed. Use it to modify primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws the screen after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.QueueUpdate(func() {
		f()
		a.draw()
	})
	return a
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		var redraw bool
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	default:
		a.logger.Debug("unknown command", "type", fmt.Sprintf("%T", cmd))
		return false
	}
}
