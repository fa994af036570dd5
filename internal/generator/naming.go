package generator

import (
	"strings"
)

// ToPascalCase converts a snake_case identifier to PascalCase
// (e.g. "get_user_name" becomes "GetUserName")
func ToPascalCase(s string) string {
	if s == "" {
		return s
	}
	parts := strings.Split(s, "_")
	var sb strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// ArgsStructName derives the name of the synthesized args struct for a
// function (e.g. "greet" becomes "GreetArgs")
func ArgsStructName(functionName string) string {
	return ToPascalCase(functionName) + "Args"
}

// TryFunctionName derives the name of the fallible client function
func TryFunctionName(functionName string) string {
	return "try_" + functionName
}

// BackendModuleName derives the isolation module name used to scope the
// tauri::command registration machinery away from the caller's namespace
func BackendModuleName(functionName string) string {
	return "__tauri_cmd_" + functionName
}
