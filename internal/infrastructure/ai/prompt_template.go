package ai

import (
	"bytes"
	"runtime"
	"strings"
	"text/template"
)

const directivePreamble = `You are a {{.Platform}} shell assistant.
Your only task is to convert natural language instructions into a single {{.Shell}} command.
Do not provide any explanation or context.
`

var (
	freeTextDirective = template.Must(template.New("free_text").Parse(directivePreamble +
		`Only respond with a single line in the format: cmd:<command>

Instruction: {{.Instruction}}
cmd:`))

	structuredDirective = template.Must(template.New("structured").Parse(directivePreamble +
		`Respond with a JSON object whose only field "cmd" holds the command.

Instruction: {{.Instruction}}`))
)

type templateData struct {
	Platform    string
	Shell       string
	Instruction string
}

// renderDirective builds the prompt sent to the generate endpoint.
func renderDirective(instruction string, structured bool) (string, error) {
	tmpl := freeTextDirective
	if structured {
		tmpl = structuredDirective
	}

	data := templateData{
		Platform:    platformName(runtime.GOOS),
		Shell:       shellDialect(runtime.GOOS),
		Instruction: strings.TrimSpace(instruction),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func platformName(goos string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	default:
		return goos
	}
}

func shellDialect(goos string) string {
	if goos == "windows" {
		return "cmd.exe"
	}
	return "bash"
}
