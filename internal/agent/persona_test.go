package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkcg-learning/debate/internal/domain"
)

func TestDefaultCatalogModerator(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	assert.Equal(t, "Debate Moderator", c.Moderator().Role)
	assert.NotEmpty(t, c.Moderator().Backstory)
}

func TestDebaterPersonaRendering(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	fields := DebaterFields{Name: "Alice", Topic: "Pineapple on pizza", Traits: "Sharp and witty."}
	a, err := c.Debater(domain.SideA, fields)
	require.NoError(t, err)
	assert.Equal(t, "Alice", a.Role)
	assert.Contains(t, a.Goal, `"Pineapple on pizza"`)
	assert.Contains(t, a.Backstory, "You are Alice")
	assert.True(t, len(a.Backstory) > len(" Traits: Sharp and witty."))
	assert.Contains(t, a.Backstory, " Traits: Sharp and witty.")

	b, err := c.Debater(domain.SideB, DebaterFields{Name: "Bob", Topic: "Pineapple on pizza"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", b.Role)
	assert.NotContains(t, b.Backstory, "Traits:")
}

func TestDebaterPersonaIsDeterministic(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	fields := DebaterFields{Name: "Alice", Topic: "T", Traits: "calm"}
	first, err := c.Debater(domain.SideA, fields)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.Debater(domain.SideA, fields)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, first.SystemPrompt(), again.SystemPrompt())
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "moderator: [",
		"no moderator": "debater_a: {role: a, backstory: b}\ndebater_b: {role: a, backstory: b}",
		"no backstory": "moderator: {role: m}\ndebater_a: {role: a}\ndebater_b: {role: a, backstory: b}",
		"bad template": "moderator: {role: m}\ndebater_a: {role: '{{.Name', backstory: b}\ndebater_b: {role: a, backstory: b}",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestUnknownFieldFailsAtRender(t *testing.T) {
	c, err := ParseCatalog([]byte("moderator: {role: m}\ndebater_a: {role: '{{.Nickname}}', backstory: b}\ndebater_b: {role: a, backstory: b}"))
	require.NoError(t, err)
	_, err = c.Debater(domain.SideA, DebaterFields{Name: "Alice"})
	assert.Error(t, err)
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	data := "moderator: {role: Judge, backstory: strict}\n" +
		"debater_a: {role: 'Dr. {{.Name}}', backstory: 'on {{.Topic}}'}\n" +
		"debater_b: {role: 'Prof. {{.Name}}', backstory: 'on {{.Topic}}'}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Judge", c.Moderator().Role)

	b, err := c.Debater(domain.SideB, DebaterFields{Name: "Bob", Topic: "tabs"})
	require.NoError(t, err)
	assert.Equal(t, "Prof. Bob", b.Role)
	assert.Equal(t, "on tabs", b.Backstory)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, "Debate Moderator", def.Moderator().Role)
}
