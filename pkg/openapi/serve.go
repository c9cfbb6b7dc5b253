package openapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SpecPath is where NewDocsHandler serves the document.
const SpecPath = "/openapi.json"

// NewDocsHandler serves spec at /openapi.json and a Swagger UI for it at
// /docs. The root redirects to /docs.
func NewDocsHandler(spec []byte) http.Handler {
	r := chi.NewRouter()

	r.Get(SpecPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write(spec)
	})

	html := []byte(SwaggerUIHTML(SpecPath))
	docs := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(html)
	}
	r.Get("/docs", docs)
	r.Get("/docs/", docs)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusFound)
	})

	return r
}

// SwaggerUIHTML returns a Swagger UI page that loads the document at specURL.
func SwaggerUIHTML(specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Route Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
    <style>
        body { margin: 0; padding: 0; }
        .swagger-ui .topbar { display: none; }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: %q,
                dom_id: '#swagger-ui',
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.SwaggerUIStandalonePreset
                ],
                layout: "BaseLayout",
                deepLinking: true,
                displayRequestDuration: true
            });
        };
    </script>
</body>
</html>`, specURL)
}
