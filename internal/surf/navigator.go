package surf

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateMsg asks the container to focus the named screen.
type NavigateMsg struct {
	Name   string
	Params any
}

// BackMsg asks the container to go back: pop in stack mode, refocus the
// master pane in split mode.
type BackMsg struct{}

// Navigate returns a command a scene can emit to switch screens.
func Navigate(name string, params any) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Name: name, Params: params}
	}
}

// Back returns the back-navigation command.
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// Config is the construction-time configuration of the container.
type Config struct {
	// InitialRoute is the route to land on in split mode's master context.
	// Defaults to the first registered screen.
	InitialRoute string
	// MainWidth is the master pane width; split mode is active iff the
	// viewport is strictly wider than this.
	MainWidth int
	// Styles overrides the default split-region styling.
	Styles *SplitStyles
	// Capabilities overrides host detection for backend selection.
	Capabilities *Capabilities
	// Keys overrides the default key bindings.
	Keys *KeyMap
}

// DefaultMainWidth is the threshold used when the config leaves it unset.
const DefaultMainWidth = 80

// Navigator is the adaptive navigation container: a Bubble Tea model that
// presents the registered screens as a two-pane split layout or a push/pop
// stack, switching automatically as the terminal width crosses the
// threshold.
type Navigator struct {
	store    NavigationStore
	watcher  *ResizeWatcher
	syncer   *ModeSynchronizer
	loaded   *LoadedSet
	renderer *LayoutRenderer
	keys     KeyMap

	mainWidth   int
	pending     Dimensions
	dims        Dimensions
	cancelWatch func()
	fatal       error
}

// New builds a container over the registered screens.
func New(screens []ScreenSpec, cfg Config) (*Navigator, error) {
	store, err := NewStore(screens, cfg.InitialRoute)
	if err != nil {
		return nil, err
	}

	mainWidth := cfg.MainWidth
	if mainWidth <= 0 {
		mainWidth = DefaultMainWidth
	}

	styles := DefaultSplitStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	caps := DetectCapabilities()
	if cfg.Capabilities != nil {
		caps = *cfg.Capabilities
	}

	keys := DefaultKeyMap()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}

	initialRoute := cfg.InitialRoute
	if initialRoute == "" {
		initialRoute = screens[0].Name
	}

	n := &Navigator{
		store:     store,
		syncer:    NewModeSynchronizer(initialRoute),
		loaded:    NewLoadedSet(),
		renderer:  NewLayoutRenderer(mainWidth, styles, NewStackBackend(caps)),
		keys:      keys,
		mainWidth: mainWidth,
	}
	n.watcher = NewResizeWatcher(func() Dimensions { return n.pending })
	n.cancelWatch = n.watcher.Subscribe(func(d Dimensions) { n.dims = d })
	return n, nil
}

// Store exposes the navigation store for inspection.
func (n *Navigator) Store() NavigationStore { return n.store }

// Loaded exposes the lazy-mount tracker for inspection.
func (n *Navigator) Loaded() *LoadedSet { return n.loaded }

// Err returns the fatal configuration error that halted the container,
// if any.
func (n *Navigator) Err() error { return n.fatal }

// Close releases the dimension subscription. Call after the program exits.
func (n *Navigator) Close() {
	if n.cancelWatch != nil {
		n.cancelWatch()
		n.cancelWatch = nil
	}
}

// Init mounts the initial scene.
func (n *Navigator) Init() tea.Cmd {
	return n.mountActive()
}

// Update drives the mode-synchronization engine and routes everything else
// to the scenes.
func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n.fatal != nil {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, n.keys.Quit) {
			return n, tea.Quit
		}
		return n, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.pending = Dimensions{Width: msg.Width, Height: msg.Height, Scale: 1, FontScale: 1}
		n.watcher.Notify()
		split := IsSplit(n.dims.Width, n.mainWidth)
		return n, n.syncer.Sync(split)

	case SetModeMsg:
		if err := n.store.SetMode(msg.Split, msg.Target); err != nil {
			n.fatal = err
			return n, nil
		}
		return n, tea.Batch(n.mountMain(), n.mountActive())

	case NavigateMsg:
		if err := n.store.Navigate(msg.Name, msg.Params); err != nil {
			n.fatal = err
			return n, nil
		}
		return n, n.mountActive()

	case BackMsg:
		return n, n.goBack()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, n.keys.Quit):
			return n, tea.Quit
		case key.Matches(msg, n.keys.Back):
			return n, n.goBack()
		}
		// Key events reach only the focused scene.
		return n, n.updateFocused(msg)
	}

	// Everything else fans out to every mounted scene, visible or not, so
	// hidden detail scenes keep their state current.
	return n, n.updateMounted(msg)
}

// View renders the layout for the authoritative mode tag and records the
// focused index in the loaded set afterwards.
func (n *Navigator) View() string {
	dims := n.dims
	if n.fatal != nil {
		return renderFatal(n.fatal, dims.Width, dims.Height)
	}
	if dims.Width <= 0 || dims.Height <= 0 {
		return "Initializing..."
	}

	state := n.store.State()
	out, err := n.renderer.Render(state, n.store.Descriptor, n.loaded, dims.Width, dims.Height)
	if err != nil {
		n.fatal = err
		return renderFatal(err, dims.Width, dims.Height)
	}

	if state.Index != state.MainIndex() {
		n.loaded.Mark(state.Index)
	}
	return out
}

// goBack pops in stack mode and refocuses the master pane in split mode.
func (n *Navigator) goBack() tea.Cmd {
	state := n.store.State()
	if state.Type == ModeSplit {
		if state.Index == state.MainIndex() {
			return nil
		}
		if err := n.store.Navigate(MainScreenName, nil); err != nil {
			n.fatal = err
			return nil
		}
		return n.mountActive()
	}
	n.store.Pop()
	return nil
}

// mountActive builds the focused scene if this is its first focus and
// returns its Init command.
func (n *Navigator) mountActive() tea.Cmd {
	route, ok := n.store.State().ActiveRoute()
	if !ok {
		return nil
	}
	return n.mount(route.Key)
}

// mountMain builds the master scene when split mode is active.
func (n *Navigator) mountMain() tea.Cmd {
	state := n.store.State()
	if state.Type != ModeSplit {
		return nil
	}
	mainIdx := state.MainIndex()
	if mainIdx < 0 {
		return nil
	}
	return n.mount(state.Routes[mainIdx].Key)
}

func (n *Navigator) mount(routeKey string) tea.Cmd {
	desc, ok := n.store.Descriptor(routeKey)
	if !ok || desc.Mounted() {
		return nil
	}
	return desc.Scene().Init()
}

// updateFocused forwards a message to the focused scene only.
func (n *Navigator) updateFocused(msg tea.Msg) tea.Cmd {
	route, ok := n.store.State().ActiveRoute()
	if !ok {
		return nil
	}
	desc, ok := n.store.Descriptor(route.Key)
	if !ok || !desc.Mounted() {
		return nil
	}
	return desc.Scene().Update(msg)
}

// updateMounted forwards a message to every mounted scene.
func (n *Navigator) updateMounted(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, route := range n.store.State().Routes {
		desc, ok := n.store.Descriptor(route.Key)
		if !ok || !desc.Mounted() {
			continue
		}
		if cmd := desc.Scene().Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
