// Package web embeds the console's HTML templates and stylesheet.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"reflect"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FuncMap holds the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatNumber": FormatNumber,
		"dict":         dict,
	}
}

// dict builds a map from key/value pairs so partial templates can take named arguments
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// LoadTemplates parses every embedded template; pages are looked up by file name
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static serves the embedded static directory
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time
		panic(err)
	}
	return http.FS(sub)
}

// FormatNumber renders n the way Indonesian readers expect, e.g. 15000.5 -> 15.000,5
func FormatNumber(n interface{}) string {
	p := message.NewPrinter(language.Indonesian)
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.Sprint(number.Decimal(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return p.Sprint(number.Decimal(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return p.Sprint(number.Decimal(v.Float()))
	default:
		return fmt.Sprint(n)
	}
}
