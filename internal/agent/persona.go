package agent

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/jkcg-learning/debate/internal/domain"
)

//go:embed personas.yaml
var defaultPersonasYAML []byte

// PersonaTemplate is one persona entry of the YAML catalog.
type PersonaTemplate struct {
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// catalogFile models personas.yaml.
type catalogFile struct {
	Moderator PersonaTemplate `yaml:"moderator"`
	DebaterA  PersonaTemplate `yaml:"debater_a"`
	DebaterB  PersonaTemplate `yaml:"debater_b"`
}

// DebaterFields are the session values substituted into a debater template.
type DebaterFields struct {
	Name   string
	Topic  string
	Traits string
}

type compiledTemplate struct {
	role      *template.Template
	goal      *template.Template
	backstory *template.Template
}

// Catalog renders personas from parsed templates. A Catalog is immutable
// and safe for concurrent use; rendering is pure substitution.
type Catalog struct {
	moderator domain.Persona
	debaterA  compiledTemplate
	debaterB  compiledTemplate
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultPersonasYAML)
}

// LoadCatalog reads a catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("personas: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("personas: parse yaml: %w", err)
	}
	if strings.TrimSpace(file.Moderator.Role) == "" {
		return nil, fmt.Errorf("personas: moderator role is required")
	}

	debaterA, err := compile("debater_a", file.DebaterA)
	if err != nil {
		return nil, err
	}
	debaterB, err := compile("debater_b", file.DebaterB)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		moderator: domain.Persona{
			Role:      strings.TrimSpace(file.Moderator.Role),
			Goal:      strings.TrimSpace(file.Moderator.Goal),
			Backstory: strings.TrimSpace(file.Moderator.Backstory),
		},
		debaterA: debaterA,
		debaterB: debaterB,
	}, nil
}

func compile(name string, t PersonaTemplate) (compiledTemplate, error) {
	if strings.TrimSpace(t.Role) == "" || strings.TrimSpace(t.Backstory) == "" {
		return compiledTemplate{}, fmt.Errorf("personas: %s needs role and backstory", name)
	}
	var out compiledTemplate
	for _, f := range []struct {
		field string
		text  string
		dst   **template.Template
	}{
		{"role", t.Role, &out.role},
		{"goal", t.Goal, &out.goal},
		{"backstory", t.Backstory, &out.backstory},
	} {
		tmpl, err := template.New(name + "." + f.field).Option("missingkey=error").Parse(f.text)
		if err != nil {
			return compiledTemplate{}, fmt.Errorf("personas: %s.%s: %w", name, f.field, err)
		}
		*f.dst = tmpl
	}
	return out, nil
}

// Moderator returns the shared moderator persona.
func (c *Catalog) Moderator() domain.Persona {
	return c.moderator
}

// Debater renders the persona for one side. Traits, when present, are appended
// to the backstory.
func (c *Catalog) Debater(side domain.Side, fields DebaterFields) (domain.Persona, error) {
	tmpl := c.debaterA
	if side == domain.SideB {
		tmpl = c.debaterB
	}

	role, err := execute(tmpl.role, fields)
	if err != nil {
		return domain.Persona{}, err
	}
	goal, err := execute(tmpl.goal, fields)
	if err != nil {
		return domain.Persona{}, err
	}
	backstory, err := execute(tmpl.backstory, fields)
	if err != nil {
		return domain.Persona{}, err
	}
	if traits := strings.TrimSpace(fields.Traits); traits != "" {
		backstory += " Traits: " + traits
	}

	return domain.Persona{Role: role, Goal: goal, Backstory: backstory}, nil
}

func execute(t *template.Template, fields DebaterFields) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, fields); err != nil {
		return "", fmt.Errorf("personas: render %s: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
