package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/navstack"
	"github.com/aretw0/navstack/internal/demo"
	navtview "github.com/aretw0/navstack/pkg/adapters/tview"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// DemoOptions configures the demo application.
type DemoOptions struct {
	Key                 string
	IgnoreDuplicateTags bool
	ResetAfter          time.Duration // zero disables the automatic reset
	Persistence         *Persistence  // optional; enables save on exit and restore on start
	Hooks               domain.Hooks
	Logger              *slog.Logger
}

// Demo is the interactive navstack demo: a color screen as root, number and
// color screens pushed from the keyboard, and a pause key to watch
// navigation being deferred and replayed.
type Demo struct {
	App    *tview.Application
	Host   *navtview.Host
	Nav    *navstack.Controller
	OnQuit func()

	status  *tview.TextView
	layout  *tview.Flex
	next    int
	opts    DemoOptions
	logger  *slog.Logger
	restore bool
}

// NewDemo builds the demo and restores the previous run when a snapshot exists.
func NewDemo(ctx context.Context, opts DemoOptions) (*Demo, error) {
	if opts.Key == "" {
		opts.Key = "demo"
	}
	d := &Demo{
		App:    tview.NewApplication(),
		Host:   navtview.NewHost(),
		status: tview.NewTextView().SetDynamicColors(true),
		next:   1,
		opts:   opts,
		logger: opts.Logger,
	}
	if d.logger == nil {
		d.logger = NewLogger("error")
	}
	d.OnQuit = d.App.Stop

	b := navstack.NewBuilder().
		AddScreen(demo.NewColorScreen(200), "").
		IgnoreDuplicateTags(opts.IgnoreDuplicateTags).
		Show(d.Host, opts.Key).
		WithLogger(d.logger).
		WithHooks(opts.Hooks).
		WithListener(func(domain.TransitionEvent) { d.refreshStatus() })
	if opts.Persistence != nil {
		b.WithSessions(opts.Persistence.Sessions, demo.NewFactory())
	}

	nav, err := b.Build()
	if err != nil {
		return nil, err
	}
	d.Nav = nav

	if opts.Persistence != nil {
		restored, err := nav.RestoreState(ctx)
		if err != nil {
			d.logger.Warn("could not restore previous demo state", "err", err)
		}
		d.restore = restored
		for _, e := range nav.Pending() {
			if n, ok := e.Entry.Screen.(*demo.NumberScreen); ok && n.Value >= d.next {
				d.next = n.Value + 1
			}
		}
	}

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.Host.Root(), 0, 1, true).
		AddItem(d.status, 1, 0, false)
	d.App.SetRoot(d.layout, true).SetInputCapture(d.HandleKey)
	d.refreshStatus()
	return d, nil
}

// Restored reports whether the demo started from a saved snapshot.
func (d *Demo) Restored() bool {
	return d.restore
}

// HandleKey is the application's input capture.
func (d *Demo) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		if !d.Nav.OnBackPressed() && d.Nav.State() == domain.Active {
			d.OnQuit()
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'n':
			d.Nav.GoForward(demo.NewNumberScreen(d.next), fmt.Sprintf("n%d", d.next))
			d.next++
		case 'c':
			d.Nav.GoForward(demo.NewColorScreen(demo.RandomLevel), "")
		case 'r':
			d.Nav.Reset()
		case 'p':
			if d.Nav.State() == domain.Active {
				d.Nav.OnPause()
			} else {
				d.Nav.OnResume()
			}
		case 'q':
			d.OnQuit()
		default:
			return ev
		}
	default:
		return ev
	}
	d.refreshStatus()
	return nil
}

// ResetToFresh replaces the whole chain with a new random color screen.
func (d *Demo) ResetToFresh() bool {
	ok := d.Nav.ResetTo(demo.NewColorScreen(demo.RandomLevel), "")
	d.refreshStatus()
	return ok
}

func (d *Demo) refreshStatus() {
	state := "[green]active[-]"
	if d.Nav.State() != domain.Active {
		state = "[red]suspended[-]"
	}
	d.status.SetText(fmt.Sprintf(" %s  depth %d  pending %d  | n number  c color  r reset  p pause  esc back  q quit",
		state, d.Nav.Len(), len(d.Nav.Pending())))
}

// Run shows the demo until the user quits or ctx is done, then saves the stack.
func (d *Demo) Run(ctx context.Context) error {
	d.Nav.OnResume()
	d.refreshStatus()

	if d.opts.ResetAfter > 0 && !d.restore {
		timer := time.AfterFunc(d.opts.ResetAfter, func() {
			d.App.QueueUpdateDraw(func() { d.ResetToFresh() })
		})
		defer timer.Stop()
	}

	stop := context.AfterFunc(ctx, d.App.Stop)
	defer stop()

	runErr := d.App.Run()
	d.Nav.OnPause()

	if d.opts.Persistence != nil {
		if err := d.Nav.SaveState(context.Background()); err != nil {
			d.logger.Error("failed to save demo state", "err", err)
		}
	}
	return runErr
}
