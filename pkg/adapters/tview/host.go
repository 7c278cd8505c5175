// Package tview hosts navigation controllers inside a rivo/tview application.
//
// Every attached key owns a frame: a breadcrumb bar above a nested
// tview.Pages holding one page per attached screen. The root Pages switches
// between frames by key.
package tview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewable is implemented by screens that render themselves.
// Other screens are shown as a centered text view with their name.
type Viewable interface {
	domain.Screen
	Primitive() tview.Primitive
}

// Host implements ports.Host on top of tview.Pages.
// Like every tview widget it must only be used from the application's
// event goroutine (or inside QueueUpdateDraw).
type Host struct {
	mu     sync.Mutex
	root   *tview.Pages
	frames map[string]*frame // by container id
	keys   map[string]string // key -> container id
}

type frame struct {
	key     string
	layout  *tview.Flex
	pages   *tview.Pages
	crumbs  *tview.TextView
	trail   []domain.Screen
	names   map[domain.Screen]string
	visible domain.Screen
	seq     int
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		root:   tview.NewPages(),
		frames: make(map[string]*frame),
		keys:   make(map[string]string),
	}
}

// Root returns the primitive to install with Application.SetRoot.
func (h *Host) Root() tview.Primitive {
	return h.root
}

// Attach creates the frame for containerID and registers it under key.
// The first attached frame is brought to front.
func (h *Host) Attach(key, containerID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.keys[key]; ok {
		return fmt.Errorf("attach %q: %w", key, domain.ErrKeyInUse)
	}
	h.keys[key] = containerID
	f := h.frameLocked(containerID)
	f.key = key
	h.root.AddPage(key, f.layout, true, h.root.GetPageCount() == 0)
	return nil
}

// Focus brings the frame attached under key to front.
func (h *Host) Focus(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.keys[key]; !ok {
		return false
	}
	h.root.SwitchToPage(key)
	return true
}

// frameLocked returns the frame of containerID, creating it on first use.
func (h *Host) frameLocked(containerID string) *frame {
	if f, ok := h.frames[containerID]; ok {
		return f
	}
	f := &frame{
		key:    containerID,
		pages:  tview.NewPages(),
		crumbs: tview.NewTextView().SetDynamicColors(true),
		names:  make(map[domain.Screen]string),
	}
	f.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.crumbs, 1, 0, false).
		AddItem(f.pages, 0, 1, true)
	h.frames[containerID] = f
	return f
}

// Show displays screen in the container, adding a page for it the first time.
func (h *Host) Show(containerID string, screen domain.Screen) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f := h.frameLocked(containerID)
	name, ok := f.names[screen]
	if !ok {
		f.seq++
		name = fmt.Sprintf("%s#%d", screen.Name(), f.seq)
		f.names[screen] = name
		f.trail = append(f.trail, screen)
		f.pages.AddPage(name, primitiveOf(screen), true, false)
	}
	f.pages.SwitchToPage(name)
	f.visible = screen
	f.renderCrumbs()
}

// Detach removes the screen's page. Unknown screens are ignored.
func (h *Host) Detach(containerID string, screen domain.Screen) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.frames[containerID]
	if !ok {
		return
	}
	name, ok := f.names[screen]
	if !ok {
		return
	}
	delete(f.names, screen)
	for i, s := range f.trail {
		if s == screen {
			f.trail = append(f.trail[:i], f.trail[i+1:]...)
			break
		}
	}
	f.pages.RemovePage(name)
	if f.visible == screen {
		f.visible = nil
	}
	f.renderCrumbs()
}

// Visible returns the screen shown in containerID, or nil.
func (h *Host) Visible(containerID string) domain.Screen {
	h.mu.Lock()
	defer h.mu.Unlock()
	if f, ok := h.frames[containerID]; ok {
		return f.visible
	}
	return nil
}

// Breadcrumbs returns the plain breadcrumb trail of containerID, root first.
func (h *Host) Breadcrumbs(containerID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.frames[containerID]
	if !ok {
		return nil
	}
	out := make([]string, len(f.trail))
	for i, s := range f.trail {
		out[i] = s.Name()
	}
	return out
}

// renderCrumbs writes the trail in the breadcrumb bar, highlighting the visible screen.
func (f *frame) renderCrumbs() {
	var sb strings.Builder
	for i, s := range f.trail {
		if i > 0 {
			sb.WriteString(" [yellow]>[white] ")
		}
		if s == f.visible {
			sb.WriteString(fmt.Sprintf("[black:orange]%s[-:-]", tview.Escape(s.Name())))
		} else {
			sb.WriteString(fmt.Sprintf("[black:aqua]%s[-:-]", tview.Escape(s.Name())))
		}
	}
	f.crumbs.SetText(sb.String())
}

func primitiveOf(screen domain.Screen) tview.Primitive {
	if v, ok := screen.(Viewable); ok {
		return v.Primitive()
	}
	return tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorWhite).
		SetText(screen.Name())
}
