package cli

import "github.com/charmbracelet/bubbles/key"

// trackerKeyMap binds the tracker actions. Bindings are enabled and
// disabled as state changes, which also hides them from the help line.
type trackerKeyMap struct {
	Start      key.Binding
	Stop       key.Binding
	Save       key.Binding
	SetTime    key.Binding
	Edit       key.Binding
	AdjustTime key.Binding
	Up         key.Binding
	Down       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newTrackerKeyMap() trackerKeyMap {
	return trackerKeyMap{
		Start:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "přidat směnu")),
		Stop:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "zastavit")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "uložit")),
		SetTime:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "nastavit čas")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "upravit")),
		AdjustTime: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "čas směny")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "nahoru")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "dolů")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "konec")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "konec")),
	}
}

func (k trackerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Save, k.SetTime, k.Edit, k.AdjustTime, k.Quit}
}

func (k trackerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down, k.ForceQuit}}
}
