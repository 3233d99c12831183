package views

import (
	"net/url"
	"slices"
	"strconv"

	"marcenaria_site/internal/adapter/http/ui"
	"marcenaria_site/internal/config"
)

type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Layout carries what every page needs for the header, menu, toast and footer.
type Layout struct {
	Title        string
	Path         string
	Site         config.SiteConfig
	Nav          []NavLink
	MenuOpen     bool
	MenuHref     string
	BackdropHref string
	HeaderHeight int
	HeaderHidden bool
	ScrollY      int
	Notification *ui.Notification
	WhatsAppHref string
}

func NewLayout(site config.SiteConfig, title, path string, menu *ui.Menu, header *ui.HeaderTracker) Layout {
	nav := []NavLink{
		{Href: "/", Label: "Início"},
		{Href: "/galeria", Label: "Galeria"},
		{Href: "/orcamento", Label: "Orçamento"},
		{Href: "/contato", Label: "Contato"},
	}
	for i := range nav {
		nav[i].Active = nav[i].Href == path
	}
	l := Layout{
		Title:        title,
		Path:         path,
		Site:         site,
		Nav:          nav,
		MenuOpen:     menu.IsOpen(),
		MenuHref:     menu.ToggleHref(path),
		BackdropHref: menu.BackdropHref(path),
		HeaderHeight: header.Height(),
		HeaderHidden: header.Hidden(),
		ScrollY:      header.Offset(),
	}
	if site.WhatsApp != "" {
		l.WhatsAppHref = "https://wa.me/" + site.WhatsApp
	}
	return l
}

type HomePage struct {
	Layout
	Services []config.SiteService
	Featured []config.GalleryImage
}

type LightboxView struct {
	Image     config.GalleryImage
	Position  string
	PrevHref  string
	NextHref  string
	CloseHref string
}

type GalleryPage struct {
	Layout
	Images   []config.GalleryImage
	Lightbox *LightboxView
}

func NewLightboxView(images []config.GalleryImage, lb *ui.Lightbox) *LightboxView {
	if !lb.IsOpen() || len(images) == 0 {
		return nil
	}
	return &LightboxView{
		Image:     images[lb.Index()],
		Position:  strconv.Itoa(lb.Index()+1) + " de " + strconv.Itoa(lb.Count()),
		PrevHref:  "/galeria/" + strconv.Itoa(lb.PrevIndex()),
		NextHref:  "/galeria/" + strconv.Itoa(lb.NextIndex()),
		CloseHref: "/galeria",
	}
}

type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

type FieldView struct {
	Name        string
	Label       string
	Kind        string
	Value       string
	Checked     bool
	Required    bool
	Invalid     bool
	Placeholder string
	Options     []OptionView
}

type HiddenField struct {
	Name  string
	Value string
}

type EstimatorPage struct {
	Layout
	StepTitle string
	Step      int
	Progress  ui.Progress
	StepNames []string
	Fields    []FieldView
	Hidden    []HiddenField
	IsFirst   bool
	IsLast    bool
	Error     string
	Result    *BreakdownView
}

var fieldKinds = map[ui.FieldKind]string{
	ui.FieldText:     "text",
	ui.FieldNumber:   "number",
	ui.FieldSelect:   "select",
	ui.FieldRadio:    "radio",
	ui.FieldCheckbox: "checkbox",
}

// NewEstimatorPage renders the active step. Values of the other steps travel as hidden
// inputs so the form accumulates across requests.
func NewEstimatorPage(layout Layout, w *ui.Wizard, invalidField string) EstimatorPage {
	values := w.Values()
	step := w.Step()

	p := EstimatorPage{
		Layout:    layout,
		StepTitle: step.Title,
		Step:      w.Current(),
		Progress:  w.Progress(),
		IsFirst:   w.IsFirst(),
		IsLast:    w.IsLast(),
	}
	for _, s := range w.Steps() {
		p.StepNames = append(p.StepNames, s.Title)
	}

	own := make(map[string]bool, len(step.Fields))
	for _, f := range step.Fields {
		own[f.Name] = true
	}
	for _, f := range w.VisibleFields() {
		p.Fields = append(p.Fields, newFieldView(f, values, f.Name == invalidField))
	}
	p.Hidden = HiddenFields(values, own)
	return p
}

func newFieldView(f ui.Field, values url.Values, invalid bool) FieldView {
	v := FieldView{
		Name:        f.Name,
		Label:       f.Label,
		Kind:        fieldKinds[f.Kind],
		Value:       values.Get(f.Name),
		Required:    f.Required,
		Invalid:     invalid,
		Placeholder: f.Placeholder,
	}
	if f.Kind == ui.FieldCheckbox {
		v.Checked = v.Value != ""
	}
	for _, o := range f.Options {
		v.Options = append(v.Options, OptionView{Value: o.Value, Label: o.Label, Selected: o.Value == v.Value})
	}
	return v
}

// Wizard control inputs never travel as hidden values.
var controlFields = map[string]bool{"step": true, "action": true}

func HiddenFields(values url.Values, exclude map[string]bool) []HiddenField {
	keys := make([]string, 0, len(values))
	for k := range values {
		if !exclude[k] && !controlFields[k] {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []HiddenField
	for _, k := range keys {
		for _, v := range values[k] {
			out = append(out, HiddenField{Name: k, Value: v})
		}
	}
	return out
}

// NoFileLabel is shown next to the file input when nothing is attached.
const NoFileLabel = "Nenhum arquivo selecionado"

type ContactFormView struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	EstimateID string
}

type ContactPage struct {
	Layout
	Form         ContactFormView
	FileLabel    string
	MaxFileMB    int
	InvalidField string
}

type ErrorPage struct {
	Layout
	Status  int
	Message string
}
