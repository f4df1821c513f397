package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds the form actions. Ctrl chords are used so that plain letters
// always reach the text inputs.
type keyMap struct {
	Add     key.Binding
	Update  key.Binding
	Delete  key.Binding
	ViewAll key.Binding
	Clear   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add")),
		Update:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "update")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		ViewAll: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "view all")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select row")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Update, k.Delete, k.ViewAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Update, k.Delete, k.ViewAll},
		{k.Next, k.Prev, k.Select, k.Clear},
		{k.Help, k.Quit},
	}
}

// dialogKeys answer a modal.
type dialogKeys struct {
	Yes key.Binding
	No  key.Binding
	OK  key.Binding
}

func defaultDialogKeys() dialogKeys {
	return dialogKeys{
		Yes: key.NewBinding(key.WithKeys("y", "Y", "enter")),
		No:  key.NewBinding(key.WithKeys("n", "N", "esc")),
		OK:  key.NewBinding(key.WithKeys("enter", "esc", " ")),
	}
}
