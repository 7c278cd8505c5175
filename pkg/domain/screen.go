package domain

// Screen is an opaque UI unit hosted inside a container.
// The controller never inspects its content: it only holds the reference while
// the screen is attached and compares screens by identity.
// Name is used for logs and breadcrumbs, never for identity.
type Screen interface {
	Name() string
}

// Descriptor is the serializable recipe a ScreenFactory uses to rebuild a screen.
type Descriptor struct {
	Kind string         `json:"kind" yaml:"kind"`
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// Restorable is implemented by screens that can survive process death.
type Restorable interface {
	Screen
	Descriptor() Descriptor
}

// Entry is a single element of the navigation stack.
// An empty Tag means the entry is untagged.
type Entry struct {
	Screen Screen
	Tag    string
}

// HasTag reports whether the entry carries a tag.
func (e Entry) HasTag() bool {
	return e.Tag != ""
}

// ScreenName returns the name of the entry's screen, or "" when unset.
func (e Entry) ScreenName() string {
	if e.Screen == nil {
		return ""
	}
	return e.Screen.Name()
}
