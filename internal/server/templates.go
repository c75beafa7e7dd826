package server

import (
	"embed"
	"html/template"

	"dropoutdash/internal/dashboard"
)

const pageTitle = "Clinical Trial Optimization Dashboard"

//go:embed templates/index.html
var templateFS embed.FS

type pageData struct {
	Title    string
	Bindings []dashboard.Binding
}

var sectionTitles = map[string]string{
	dashboard.DropdownFeatureModel:    "Feature Importance",
	dashboard.DropdownPredictionModel: "Dropout Predictions Overview",
	dashboard.DropdownConfusionModel:  "Confusion Matrix",
}

var funcMap = template.FuncMap{
	"sectionTitle": func(dropdown string) string { return sectionTitles[dropdown] },
}

func parsePage() (*template.Template, error) {
	return template.New("index.html").Funcs(funcMap).ParseFS(templateFS, "templates/index.html")
}
