package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfy/backend/internal/shared/types"
)

// gifPayload is a syntactically valid embedded image.
var gifPayload = "data:image/gif;base64," +
	base64.StdEncoding.EncodeToString([]byte("GIF89a\x01\x00\x01\x00\x80\x00\x00"))

func imageWidget(wid, src string) types.Widget {
	return types.Widget{
		ID:       wid,
		Type:     types.TypeImage,
		Position: types.Position{X: 10, Y: 10},
		Size:     types.Size{Width: 200, Height: 200},
		Props:    map[string]interface{}{"src": src},
	}
}

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[f.Name] = content
	}
	return files
}

func exportWindow() types.WindowProperties {
	return types.WindowProperties{Title: "Demo", Size: types.Size{Width: 800, Height: 600}}
}

func TestExportContainsStandardFiles(t *testing.T) {
	data, err := New(nil).Export(context.Background(), nil, exportWindow())
	require.NoError(t, err)

	files := readArchive(t, data)
	assert.Contains(t, files, "app.py")
	assert.Contains(t, files, "requirements.txt")
	assert.Contains(t, files, "README.md")
	assert.Contains(t, files, "assets/placeholder.png")

	assert.Equal(t, requirements, string(files["requirements.txt"]))
	assert.Equal(t, PlaceholderPNG(), files["assets/placeholder.png"])
	assert.Contains(t, string(files["README.md"]), "# Demo")
	assert.Contains(t, string(files["app.py"]), "import customtkinter as ctk")
}

func TestExportEmbedsValidImage(t *testing.T) {
	w := imageWidget("image-1", gifPayload)

	data, err := New(nil).Export(context.Background(), []types.Widget{w}, exportWindow())
	require.NoError(t, err)

	files := readArchive(t, data)
	name := Collect([]types.Widget{w})[gifPayload]
	require.NotEmpty(t, name)
	assert.True(t, strings.HasSuffix(name, ".gif"))

	want, _ := base64.StdEncoding.DecodeString(payloadBody(gifPayload))
	assert.Equal(t, want, files["assets/"+name])

	// The generated program must load the asset by its archive name
	assert.Contains(t, string(files["app.py"]), `"assets/`+name+`"`)
}

func TestExportMalformedPayloadFallsBackToPlaceholder(t *testing.T) {
	// Five base64 characters cannot be padded to a multiple of four
	bad := imageWidget("image-1", "data:image/png;base64,abcde")

	data, err := New(nil).Export(context.Background(), []types.Widget{bad}, exportWindow())
	require.NoError(t, err)

	files := readArchive(t, data)
	name := Collect([]types.Widget{bad})[bad.Props["src"].(string)]
	require.NotEmpty(t, name)
	assert.Equal(t, PlaceholderPNG(), files["assets/"+name])
}

func TestExportEmptyPayloadFallsBackToPlaceholder(t *testing.T) {
	bad := imageWidget("image-1", "data:image/png;base64,")

	data, err := New(nil).Export(context.Background(), []types.Widget{bad}, exportWindow())
	require.NoError(t, err)

	files := readArchive(t, data)
	name := Collect([]types.Widget{bad})["data:image/png;base64,"]
	assert.Equal(t, PlaceholderPNG(), files["assets/"+name])
}

func TestExportDeduplicatesIdenticalPayloads(t *testing.T) {
	a := imageWidget("image-1", gifPayload)
	b := imageWidget("image-2", gifPayload)

	data, err := New(nil).Export(context.Background(), []types.Widget{a, b}, exportWindow())
	require.NoError(t, err)

	files := readArchive(t, data)
	count := 0
	for name := range files {
		if strings.HasPrefix(name, "assets/image_") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExportDeterministic(t *testing.T) {
	widgets := []types.Widget{imageWidget("image-1", gifPayload)}

	first, err := New(nil).Export(context.Background(), widgets, exportWindow())
	require.NoError(t, err)
	second, err := New(nil).Export(context.Background(), widgets, exportWindow())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Export(ctx, []types.Widget{imageWidget("image-1", gifPayload)}, exportWindow())
	assert.Error(t, err)
}

func TestExportAsync(t *testing.T) {
	res := <-New(nil).ExportAsync(context.Background(), nil, exportWindow())
	require.NoError(t, res.Err)
	assert.NotEmpty(t, res.Data)
}

func TestCollectSharesNameAcrossWidgets(t *testing.T) {
	a := imageWidget("image-1", gifPayload)
	b := imageWidget("image-2", gifPayload)

	m := Collect([]types.Widget{a, b})
	assert.Len(t, m, 1)
}

func TestCollectIgnoresPlainFileNames(t *testing.T) {
	w := imageWidget("image-1", "")
	w.Props = map[string]interface{}{"fileName": "photo.png"}

	assert.Empty(t, Collect([]types.Widget{w}))
}

func TestResolveImageRefsDoesNotMutateInput(t *testing.T) {
	w := imageWidget("image-1", gifPayload)
	widgets := []types.Widget{w}

	resolveImageRefs(widgets, Collect(widgets))

	_, has := widgets[0].Props["fileName"]
	assert.False(t, has)
}

func TestHasEmbeddedImages(t *testing.T) {
	assert.True(t, HasEmbeddedImages([]types.Widget{imageWidget("image-1", gifPayload)}))
	assert.False(t, HasEmbeddedImages([]types.Widget{{ID: "button-1", Type: types.TypeButton}}))
}
