package views

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"marcenaria_site/internal/adapter/http/ui"
	"marcenaria_site/internal/config"
	"marcenaria_site/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:     "Marcenaria Teste",
		Tagline:  "Móveis sob medida",
		WhatsApp: "5511999990000",
		Services: []config.SiteService{{Title: "Cozinhas", Description: "Planejadas"}},
		Gallery: []config.GalleryImage{
			{Src: "/a.jpg", Alt: "A", Caption: "Cozinha A"},
			{Src: "/b.jpg", Alt: "B"},
			{Src: "/c.jpg", Alt: "C"},
		},
	}
}

func testLayout(path string) Layout {
	return NewLayout(testSite(), "Teste", path, ui.NewMenu(false), ui.NewHeaderTracker(80))
}

func referenceEstimate() entities.Estimate {
	return entities.Estimate{
		ID:    "est-1",
		Input: entities.EstimateInput{FurnitureType: entities.FurnitureWardrobe},
		Result: entities.EstimateResult{
			FrontArea:       4.8,
			TotalArea:       10.08,
			Sheets:          2,
			UnitPrice:       800,
			BasePrice:       3840,
			AdditionalCosts: []entities.CostItem{{Code: entities.CostNonFrontMaterial, Amount: 2956.8}},
			AdditionalTotal: 2956.8,
			TotalPrice:      6796.8,
		},
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 6.796,80", FormatBRL(6796.8))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(1234567.89))
	assert.Equal(t, "10,08 m²", FormatArea(10.08))
}

func TestNewBreakdownView(t *testing.T) {
	v := NewBreakdownView(referenceEstimate())

	assert.Equal(t, "Guarda-roupa", v.FurnitureLabel)
	assert.Equal(t, "R$ 6.796,80", v.Total)
	assert.Equal(t, "R$ 2.956,80", v.AdditionalSum)
	require.Len(t, v.Costs, 1)
	assert.Equal(t, BreakdownLine{Label: "Laterais, fundo e prateleiras", Value: "R$ 2.956,80"}, v.Costs[0])
	assert.Contains(t, v.Summary, BreakdownLine{Label: "Chapas", Value: "2 chapas"})
	assert.Contains(t, v.Summary, BreakdownLine{Label: "Área frontal", Value: "4,80 m²"})
	assert.Equal(t, "/contato?origem=orcamento", v.QuoteHref)
}

func TestEstimateSummary(t *testing.T) {
	s := EstimateSummary(referenceEstimate())
	assert.Contains(t, s, "Móvel: Guarda-roupa")
	assert.Contains(t, s, "Valor estimado: R$ 6.796,80")
	assert.Contains(t, s, "Referência: est-1")
}

func TestNewLayout(t *testing.T) {
	l := testLayout("/galeria")
	assert.Equal(t, "https://wa.me/5511999990000", l.WhatsAppHref)
	assert.Equal(t, "/galeria?menu=aberto", l.MenuHref)
	assert.Equal(t, "/galeria?menu=fora", l.BackdropHref)
	assert.False(t, l.HeaderHidden)

	l = NewLayout(testSite(), "Teste", "/", ui.MenuFromQuery(ui.MenuQueryValue), ui.HeaderFromOffset(80, 300))
	assert.True(t, l.MenuOpen)
	assert.True(t, l.HeaderHidden)
	assert.Equal(t, 300, l.ScrollY)
	for _, n := range l.Nav {
		assert.Equal(t, n.Href == "/galeria", n.Active, n.Href)
	}
}

func TestNewLightboxView(t *testing.T) {
	images := testSite().Gallery
	lb := ui.NewLightbox(len(images))
	assert.Nil(t, NewLightboxView(images, lb))

	lb.Open(0)
	v := NewLightboxView(images, lb)
	require.NotNil(t, v)
	assert.Equal(t, "1 de 3", v.Position)
	assert.Equal(t, "/galeria/2", v.PrevHref)
	assert.Equal(t, "/galeria/1", v.NextHref)
}

func TestNewEstimatorPage_CarriesOtherStepsAsHidden(t *testing.T) {
	values := url.Values{
		"furniture_type": {"wardrobe"},
		"width":          {"2"},
		"material":       {"standard"},
		"step":           {"1"},
		"action":         {"next"},
	}
	w := ui.NewWizard(ui.EstimatorSteps(), 1, values)
	p := NewEstimatorPage(testLayout("/orcamento"), w, "depth")

	assert.Equal(t, "Medidas", p.StepTitle)
	assert.Equal(t, []HiddenField{{Name: "furniture_type", Value: "wardrobe"}, {Name: "material", Value: "standard"}}, p.Hidden)

	names := map[string]FieldView{}
	for _, f := range p.Fields {
		names[f.Name] = f
	}
	assert.Contains(t, names, "depth")
	assert.NotContains(t, names, "wall_1")
	assert.True(t, names["depth"].Invalid)
	assert.Equal(t, "2", names["width"].Value)
}

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestTemplates_Render(t *testing.T) {
	site := testSite()

	t.Run("home", func(t *testing.T) {
		html := render(t, "home.html", HomePage{Layout: testLayout("/"), Services: site.Services, Featured: site.Gallery[:2]})
		assert.Contains(t, html, "Marcenaria Teste")
		assert.Contains(t, html, "Cozinhas")
		assert.Contains(t, html, `href="/galeria/1"`)
	})

	t.Run("gallery with lightbox", func(t *testing.T) {
		lb := ui.NewLightbox(len(site.Gallery))
		lb.Open(1)
		html := render(t, "gallery.html", GalleryPage{Layout: testLayout("/galeria"), Images: site.Gallery, Lightbox: NewLightboxView(site.Gallery, lb)})
		assert.Contains(t, html, `class="lightbox"`)
		assert.Contains(t, html, "2 de 3")
	})

	t.Run("estimator result", func(t *testing.T) {
		res := NewBreakdownView(referenceEstimate())
		html := render(t, "estimator.html", EstimatorPage{Layout: testLayout("/orcamento"), Result: &res})
		assert.Contains(t, html, "R$ 6.796,80")
		assert.Contains(t, html, "Solicitar orçamento")
		assert.NotContains(t, html, `<form method="post" action="/orcamento"`)
	})

	t.Run("estimator step with error toast", func(t *testing.T) {
		l := testLayout("/orcamento")
		l.Notification = ui.NewNotification(ui.NotificationError, `Selecione uma opção em "Tipo de móvel".`, 0)
		w := ui.NewWizard(ui.EstimatorSteps(), 0, url.Values{})
		html := render(t, "estimator.html", NewEstimatorPage(l, w, "furniture_type"))
		assert.Contains(t, html, `type="radio" name="furniture_type" value="kitchen"`)
		assert.Contains(t, html, `data-dismiss-after="5000"`)
		assert.Contains(t, html, "Próximo")
		assert.NotContains(t, html, "Voltar")
	})

	t.Run("contact resets file label", func(t *testing.T) {
		html := render(t, "contact.html", ContactPage{Layout: testLayout("/contato"), FileLabel: NoFileLabel, MaxFileMB: 5})
		assert.Contains(t, html, `<span class="file-label" data-empty="Nenhum arquivo selecionado">Nenhum arquivo selecionado</span>`)
		assert.True(t, strings.Contains(html, `enctype="multipart/form-data"`))
	})

	t.Run("error page", func(t *testing.T) {
		html := render(t, "error.html", ErrorPage{Layout: testLayout("/x"), Status: 404, Message: "Página não encontrada"})
		assert.Contains(t, html, "Página não encontrada")
	})
}
