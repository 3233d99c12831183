package ui

import (
	"fmt"
	"net/url"
	"strings"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldSelect
	FieldRadio
	FieldCheckbox
)

type Option struct {
	Value string
	Label string
}

// Field is one input of a wizard step. A nil VisibleWhen means always shown.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	Options     []Option
	Placeholder string
	Hint        string
	VisibleWhen func(url.Values) bool
}

type Step struct {
	Title  string
	Fields []Field
}

// FieldError names the first required field left empty on the active step.
type FieldError struct {
	Field string
	Label string
	Kind  FieldKind
}

func (e *FieldError) Error() string {
	if e.Kind == FieldRadio {
		return fmt.Sprintf("Selecione uma opção em \"%s\".", e.Label)
	}
	return fmt.Sprintf("Preencha o campo \"%s\".", e.Label)
}

type Progress struct {
	Current int
	Total   int
	Percent int
}

// Wizard walks a fixed sequence of steps. It is rebuilt on every request from the
// posted step index and the values accumulated so far.
type Wizard struct {
	steps   []Step
	current int
	values  url.Values
}

func NewWizard(steps []Step, current int, values url.Values) *Wizard {
	if values == nil {
		values = url.Values{}
	}
	w := &Wizard{steps: steps, values: values}
	w.current = w.clamp(current)
	return w
}

func (w *Wizard) clamp(i int) int {
	if i < 0 || len(w.steps) == 0 {
		return 0
	}
	if i >= len(w.steps) {
		return len(w.steps) - 1
	}
	return i
}

func (w *Wizard) Current() int { return w.current }

func (w *Wizard) Total() int { return len(w.steps) }

func (w *Wizard) Step() Step {
	if len(w.steps) == 0 {
		return Step{}
	}
	return w.steps[w.current]
}

func (w *Wizard) Steps() []Step { return w.steps }

func (w *Wizard) Values() url.Values { return w.values }

func (w *Wizard) IsFirst() bool { return w.current == 0 }

func (w *Wizard) IsLast() bool { return w.current == len(w.steps)-1 }

// Next validates the visible required fields of the active step. It advances on success;
// on the last step it reports done instead.
func (w *Wizard) Next() (done bool, err error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if w.IsLast() {
		return true, nil
	}
	w.current++
	return false, nil
}

// Back never fails and never goes below the first step.
func (w *Wizard) Back() {
	if w.current > 0 {
		w.current--
	}
}

func (w *Wizard) Validate() error {
	for _, f := range w.Step().Fields {
		if !f.Required || !w.Visible(f) {
			continue
		}
		if w.empty(f) {
			return &FieldError{Field: f.Name, Label: f.Label, Kind: f.Kind}
		}
	}
	return nil
}

func (w *Wizard) empty(f Field) bool {
	switch f.Kind {
	case FieldRadio:
		for _, v := range w.values[f.Name] {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
		return true
	case FieldCheckbox:
		return false
	default:
		return strings.TrimSpace(w.values.Get(f.Name)) == ""
	}
}

func (w *Wizard) Visible(f Field) bool {
	return f.VisibleWhen == nil || f.VisibleWhen(w.values)
}

func (w *Wizard) VisibleFields() []Field {
	var out []Field
	for _, f := range w.Step().Fields {
		if w.Visible(f) {
			out = append(out, f)
		}
	}
	return out
}

func (w *Wizard) Progress() Progress {
	total := len(w.steps)
	if total == 0 {
		return Progress{}
	}
	return Progress{
		Current: w.current + 1,
		Total:   total,
		Percent: (w.current + 1) * 100 / total,
	}
}

// When shows a field only while name holds one of values.
func When(name string, values ...string) func(url.Values) bool {
	return func(v url.Values) bool {
		got := strings.TrimSpace(v.Get(name))
		for _, want := range values {
			if got == want {
				return true
			}
		}
		return false
	}
}

// WhenNot shows a field while name is set to anything other than values.
func WhenNot(name string, values ...string) func(url.Values) bool {
	is := When(name, values...)
	return func(v url.Values) bool {
		return strings.TrimSpace(v.Get(name)) != "" && !is(v)
	}
}

func All(conds ...func(url.Values) bool) func(url.Values) bool {
	return func(v url.Values) bool {
		for _, c := range conds {
			if !c(v) {
				return false
			}
		}
		return true
	}
}
