package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, tmpl string, data any) (string, error) {
	t.Helper()
	compiled, err := Compile(tmpl)
	if err != nil {
		return "", err
	}
	return Execute(compiled, data)
}

func TestExecute_Prompt(t *testing.T) {
	result, err := render(t, "{{ .Cwd }} $ ", Prompt{Cwd: "/tmp/work", Home: "/home/me"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work $ ", result)
}

func TestExecute_NoFields(t *testing.T) {
	result, err := render(t, "> ", Prompt{})
	require.NoError(t, err)
	assert.Equal(t, "> ", result)
}

func TestExecute_EmptyTemplate(t *testing.T) {
	result, err := render(t, "", Prompt{Cwd: "/x"})
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestExecute_UnknownField(t *testing.T) {
	_, err := render(t, "{{ .Host }} $ ", Prompt{Cwd: "/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestExecute_MissingMapKey(t *testing.T) {
	_, err := render(t, "{{ .missing }}", map[string]string{"exists": "value"})
	require.Error(t, err)
}

func TestCompile_InvalidSyntax(t *testing.T) {
	_, err := Compile("{{ .Cwd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestExecute_Reuse(t *testing.T) {
	tmpl, err := Compile("[{{ .Cwd }}]")
	require.NoError(t, err)

	for _, dir := range []string{"/a", "/b"} {
		out, err := Execute(tmpl, Prompt{Cwd: dir})
		require.NoError(t, err)
		assert.Equal(t, "["+dir+"]", out)
	}
}
