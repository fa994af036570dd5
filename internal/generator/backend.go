package generator

import (
	"bytes"
	"text/template"

	"github.com/NexRX/tauri-bridge/internal/errors"
	"github.com/NexRX/tauri-bridge/internal/models"
)

// The backend artifact re-emits the annotated function unchanged under a
// #[tauri::command] attribute. The registration machinery that attribute
// expands to is scoped inside a uniquely named module so the only symbol
// visible to the caller is the re-exported function itself.
const backendTemplateText = `#[cfg(all(feature = "backend", not(target_arch = "wasm32")))]
mod {{.ModName}} {
    use super::*;

{{range .Attributes}}    {{.}}
{{end}}    #[tauri::command]
    {{.Vis}}{{.Async}}fn {{.Name}}{{.Generics}}({{.Params}}){{.Return}}{{.Where}} {{.Body}}
}

#[cfg(all(feature = "backend", not(target_arch = "wasm32")))]
{{.Vis}}use {{.ModName}}::{{.Name}};
`

var backendTemplate = template.Must(template.New("backend").Parse(backendTemplateText))

type backendData struct {
	ModName    string
	Attributes []string
	Vis        string
	Async      string
	Name       string
	Generics   string
	Params     string
	Return     string
	Where      string
	Body       string
}

func (g *Generator) generateBackend(sig *models.FunctionSignature) (string, error) {
	data := backendData{
		ModName:    BackendModuleName(sig.Name),
		Attributes: sig.Attributes,
		Vis:        renderVisibility(sig.Visibility),
		Name:       sig.Name,
		Generics:   sig.Generics,
		Params:     renderParams(sig.Parameters, false),
		Body:       sig.Body,
	}
	if sig.IsAsync {
		data.Async = "async "
	}
	if sig.ReturnType != nil {
		data.Return = " -> " + sig.ReturnType.String()
	}
	if sig.Where != "" {
		data.Where = " " + sig.Where
	}

	var buf bytes.Buffer
	if err := backendTemplate.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError("backend", err)
	}
	return buf.String(), nil
}
