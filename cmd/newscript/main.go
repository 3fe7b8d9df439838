// Command newscript scaffolds a scene script in internal/scripts, already
// registered with a factory, serializer and property applier.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode"
)

const defaultDir = "internal/scripts"

var scriptTmpl = template.Must(template.New("script").Parse(`package scripts

import "exhibit3d/internal/engine"

type {{.Name}} struct {
	engine.BaseComponent
	Speed float32
}

func (s *{{.Name}}) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
}

func init() {
	engine.RegisterScriptWithApplier("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer, {{.Lower}}Applier)
}

func {{.Lower}}Factory(props engine.Props) engine.Component {
	return &{{.Name}}{Speed: props.Float("speed", 1)}
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": s.Speed,
	}
}

func {{.Lower}}Applier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*{{.Name}})
	if !ok {
		return false
	}
	if propName == "speed" {
		if v, ok := engine.ToFloat(value); ok {
			s.Speed = v
			return true
		}
	}
	return false
}
`))

type scriptData struct {
	Name  string
	Lower string
}

func validName(name string) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("script name %q must be a Go identifier", name)
		}
	}
	return nil
}

func render(name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data := scriptData{
		Name:  name,
		Lower: string(unicode.ToLower(rune(name[0]))) + name[1:],
	}
	var buf bytes.Buffer
	if err := scriptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}

// create writes the scaffold and returns its path. Existing files are
// never overwritten.
func create(dir, name string) (string, error) {
	content, err := render(name)
	if err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		return "", fmt.Errorf("%s already exists", outPath)
	}
	if err := os.WriteFile(outPath, content, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

func main() {
	dir := flag.String("dir", defaultDir, "directory to write the script into")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript [-dir DIR] <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript Pulser\n")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	outPath, err := create(*dir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Script \"%s\" registered. Add it to a scene object:\n\n", name)
	fmt.Printf("  {\"type\": \"Script\", \"name\": \"%s\", \"props\": {\"speed\": 1.0}}\n", name)
}
