package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type parsedDoc struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths map[string]map[string]any `json:"paths"`
}

func readDoc(t *testing.T) parsedDoc {
	t.Helper()
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed parsedDoc
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	return parsed
}

func TestSwaggerDocRegistered(t *testing.T) {
	parsed := readDoc(t)

	assert.Equal(t, "Notes API", parsed.Info.Title)
	assert.Contains(t, parsed.Paths, "/notes")
	assert.Contains(t, parsed.Paths, "/notes/{id}")
	assert.Contains(t, parsed.Paths["/notes"], "post")
	assert.Contains(t, parsed.Paths["/notes"], "put")
	assert.Contains(t, parsed.Paths["/notes/{id}"], "delete")
}

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

// Every @Router annotation must have a matching operation in the generated
// document and vice versa. Run `go generate ./docs` when this fails.
func TestSwaggerDocMatchesAnnotations(t *testing.T) {
	files := []string{
		filepath.Join("..", "cmd", "server", "handlers", "healthz.go"),
		filepath.Join("..", "cmd", "server", "handlers", "notes", "handlers.go"),
	}

	annotated := map[string]bool{}
	for _, f := range files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			annotated[m[1]+" "+strings.ToLower(m[2])] = true
		}
	}
	require.NotEmpty(t, annotated)

	documented := map[string]bool{}
	for path, ops := range readDoc(t).Paths {
		for method := range ops {
			documented[path+" "+method] = true
		}
	}

	assert.Equal(t, annotated, documented)
}
