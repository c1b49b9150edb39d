package middleware

import (
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

// TemplateSettings holds the values every view of the application receives.
type TemplateSettings struct {
	Title string
	Data  map[string]any
}

// TemplateData shares the application wide template values with the views of
// each request.
type TemplateData struct {
	settings *TemplateSettings
}

// NewTemplateData creates the middleware sharing settings with every view.
func NewTemplateData(settings *TemplateSettings) *TemplateData {
	return &TemplateData{settings: settings}
}

// Process shares the title and data of the settings, then runs the chain.
func (m *TemplateData) Process(c *router.Context, next router.Action) error {
	for k, v := range m.settings.Data {
		c.Share(k, v)
	}
	if m.settings.Title != "" {
		c.Share(view.TitleKey, m.settings.Title)
	}
	return next()
}
