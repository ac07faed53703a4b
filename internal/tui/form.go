package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labeled text input of an entry form. Key names the
// value in the submitted result.
type formField struct {
	Key   string
	Label string
	Input textinput.Model
}

// formModel is a generic vertical entry form: tab/shift+tab move focus,
// enter submits, esc cancels. The owning model reads the values back by
// key on submit.
type formModel struct {
	title   string
	fields  []formField
	focus   int
	preview func(formResult) string
}

func newFormField(key, label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 32
	in.SetValue(value)
	return formField{Key: key, Label: label, Input: in}
}

func newForm(title string, fields ...formField) formModel {
	f := formModel{title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].Input.Focus()
	}
	return f
}

// formResult carries the submitted values, keyed by field key.
type formResult map[string]string

func (f formModel) values() formResult {
	out := make(formResult, len(f.fields))
	for _, field := range f.fields {
		out[field.Key] = strings.TrimSpace(field.Input.Value())
	}
	return out
}

// value returns the current value of one field, or "" if absent.
func (f formModel) value(key string) string {
	for _, field := range f.fields {
		if field.Key == key {
			return strings.TrimSpace(field.Input.Value())
		}
	}
	return ""
}

// setValue replaces the value of one field if it exists.
func (f *formModel) setValue(key, v string) {
	for i := range f.fields {
		if f.fields[i].Key == key {
			f.fields[i].Input.SetValue(v)
			return
		}
	}
}

// update advances the form. submitted is true when the user pressed
// enter on the last field (or ctrl+s anywhere); canceled when esc.
func (f formModel) update(msg tea.Msg) (formModel, bool, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg), false, false
	}

	switch keyMsg.String() {
	case "esc":
		return f, false, true
	case "ctrl+s":
		return f, true, false
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, false, false
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, false, false
	case "enter":
		if f.focus == len(f.fields)-1 {
			return f, true, false
		}
		f.setFocus(f.focus + 1)
		return f, false, false
	}

	return f.updateInputs(msg), false, false
}

func (f formModel) updateInputs(msg tea.Msg) formModel {
	for i := range f.fields {
		if i == f.focus {
			f.fields[i].Input, _ = f.fields[i].Input.Update(msg)
		}
	}
	return f
}

func (f *formModel) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	if i >= len(f.fields) {
		i = 0
	}
	f.fields[f.focus].Input.Blur()
	f.focus = i
	f.fields[f.focus].Input.Focus()
}

func (f formModel) view() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render(f.title))
	b.WriteString("\n")
	for i, field := range f.fields {
		label := formLabelStyle
		if i == f.focus {
			label = focusedLabelStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(field.Label),
			field.Input.View(),
		))
		b.WriteString("\n")
	}
	if f.preview != nil {
		if p := f.preview(f.values()); p != "" {
			b.WriteString("\n")
			b.WriteString(subtleStyle.Render(p))
			b.WriteString("\n")
		}
	}
	b.WriteString(subtleStyle.Render("\nenter/tab next · shift+tab back · ctrl+s save · esc cancel"))
	return b.String()
}
