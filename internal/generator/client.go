package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/NexRX/tauri-bridge/internal/analysis"
	"github.com/NexRX/tauri-bridge/internal/errors"
	"github.com/NexRX/tauri-bridge/internal/models"
)

// SharedLifetime is the single lifetime that ties every elided reference in
// the generated args struct and client signatures to the caller's scope.
const SharedLifetime = "'a"

// The client artifact is three pieces: the args struct (only when the
// function takes parameters), the fallible try_ function, and the
// convenience function that unwraps it. Both functions are async regardless
// of the source declaration, since the dispatch boundary always suspends.
const clientTemplateText = `{{if .HasArgs}}#[cfg(target_arch = "wasm32")]
#[derive(serde::Serialize, serde::Deserialize)]
struct {{.ArgsName}}{{if .NeedsLifetime}}<'a>{{end}} {
{{- range .Fields}}
    {{.Name}}: {{.Type}},
{{- end}}
}

{{end}}#[cfg(target_arch = "wasm32")]
{{.Vis}}async fn {{.TryName}}{{if .NeedsLifetime}}<'a>{{end}}({{.Params}}) -> Result<{{.Return}}, String> {
    let args = serde_wasm_bindgen::to_value(&{{.EncodeTarget}})
        .map_err(|e| format!("Failed to serialize arguments: {}", e))?;
    let result = crate::invoke("{{.Name}}", args).await;
    {{.DecodeExpr}}
}

#[cfg(target_arch = "wasm32")]
{{.Vis}}async fn {{.Name}}{{if .NeedsLifetime}}<'a>{{end}}({{.Params}}) -> {{.Return}} {
    {{.TryName}}({{.Forwards}}).await.unwrap()
}
`

var clientTemplate = template.Must(template.New("client").Parse(clientTemplateText))

type clientField struct {
	Name string
	Type string
}

type clientData struct {
	HasArgs       bool
	NeedsLifetime bool
	ArgsName      string
	Fields        []clientField
	Vis           string
	TryName       string
	Name          string
	Params        string
	Forwards      string
	Return        string
	EncodeTarget  string
	DecodeExpr    string
}

func (g *Generator) generateClient(sig *models.FunctionSignature) (string, error) {
	needsLifetime := analysis.NeedsSharedLifetime(sig.Parameters)

	data := clientData{
		HasArgs:       sig.HasParameters(),
		NeedsLifetime: needsLifetime,
		ArgsName:      ArgsStructName(sig.Name),
		Vis:           renderVisibility(sig.Visibility),
		TryName:       TryFunctionName(sig.Name),
		Name:          sig.Name,
		Params:        renderParams(sig.Parameters, needsLifetime),
		Forwards:      renderForwards(sig.Parameters),
		Return:        renderReturn(sig.ReturnType),
	}

	for _, p := range sig.Parameters {
		fieldType := p.Type
		if needsLifetime {
			fieldType = analysis.RewriteLifetime(p.Type, SharedLifetime)
		}
		data.Fields = append(data.Fields, clientField{Name: p.Name, Type: fieldType.String()})
	}

	if sig.HasParameters() {
		data.EncodeTarget = fmt.Sprintf("%s { %s }", data.ArgsName, data.Forwards)
	} else {
		// No args struct: dispatch an explicit null payload
		data.EncodeTarget = "serde_json::Value::Null"
	}

	data.DecodeExpr = SelectDecode(renderReturn(sig.ReturnType)).DecodeExpr()

	var buf bytes.Buffer
	if err := clientTemplate.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError("client", err)
	}
	return buf.String(), nil
}

// renderReturn renders the declared return type, defaulting to the unit type
// when the function returns nothing
func renderReturn(returnType *models.TypeDescriptor) string {
	if returnType == nil {
		return "()"
	}
	return returnType.String()
}

// renderVisibility renders the raw visibility marker with a trailing space,
// or nothing for private functions
func renderVisibility(vis string) string {
	if vis == "" {
		return ""
	}
	return vis + " "
}

// renderParams renders the parameter list in declaration order. When
// rewriteLifetimes is set, every parameter type has its elided references
// tagged with the shared lifetime.
func renderParams(params []models.Parameter, rewriteLifetimes bool) string {
	parts := make([]string, len(params))
	for i, p := range params {
		ty := p.Type
		if rewriteLifetimes {
			ty = analysis.RewriteLifetime(p.Type, SharedLifetime)
		}
		parts[i] = fmt.Sprintf("%s: %s", p.Name, ty.String())
	}
	return strings.Join(parts, ", ")
}

// renderForwards renders the comma separated parameter names used both for
// struct initialization and for forwarding to the fallible function
func renderForwards(params []models.Parameter) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
