package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"github.com/buildfy/backend/internal/codegen"
	"github.com/buildfy/backend/internal/shared/types"
)

// ArchiveName is the fixed download filename for every export.
const ArchiveName = "customtkinter-project.zip"

// requirements pins the runtime dependencies of the generated program.
const requirements = "customtkinter>=5.2.0\nPillow>=9.0.0\ntkcalendar>=1.6.1\n"

// deflateLevel balances archive size against export latency.
const deflateLevel = 6

// Exporter packages a design into a runnable project archive.
type Exporter struct {
	log *zap.Logger
}

// New builds an Exporter. log may be nil.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log}
}

// Result carries the outcome of an asynchronous export.
type Result struct {
	Data []byte
	Err  error
}

// Export builds the complete archive in memory: the generated program,
// requirements.txt, README.md, the placeholder image, and one file per
// distinct embedded image payload. A malformed payload is replaced by
// the placeholder bytes under its assigned name; only failure to write
// the archive container itself aborts the export. The context cancels
// the per-asset loop, so an abandoned export stops without surfacing a
// partial archive.
func (e *Exporter) Export(ctx context.Context, widgets []types.Widget, window types.WindowProperties) ([]byte, error) {
	assets := Collect(widgets)
	code := codegen.Program(resolveImageRefs(widgets, assets), window)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, deflateLevel)
	})

	files := []struct {
		name string
		data []byte
	}{
		{"app.py", []byte(code)},
		{"requirements.txt", []byte(requirements)},
		{"README.md", []byte(Readme(window.Title))},
		{"assets/placeholder.png", PlaceholderPNG()},
	}
	for _, f := range files {
		if err := writeEntry(zw, f.name, f.data); err != nil {
			return nil, err
		}
	}

	for _, src := range sortedPayloads(assets) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export cancelled: %w", err)
		}
		name := assets[src]
		data, ok := validatePayload(src)
		if !ok {
			e.log.Warn("substituting placeholder for invalid image payload",
				zap.String("asset", name))
			data = PlaceholderPNG()
		}
		if err := writeEntry(zw, "assets/"+name, data); err != nil {
			return nil, err
		}
		e.log.Debug("embedded asset", zap.String("asset", name), zap.Int("bytes", len(data)))
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportAsync runs Export off the caller's goroutine and delivers the
// outcome on the returned channel.
func (e *Exporter) ExportAsync(ctx context.Context, widgets []types.Widget, window types.WindowProperties) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		data, err := e.Export(ctx, widgets, window)
		ch <- Result{Data: data, Err: err}
	}()
	return ch
}

// resolveImageRefs rewrites image references on a copy of the widget
// list so the generated program loads each embedded payload by its
// archive filename instead of the raw data URI.
func resolveImageRefs(widgets []types.Widget, assets Mapping) []types.Widget {
	if len(assets) == 0 {
		return widgets
	}
	out := types.CloneWidgets(widgets)
	for i := range out {
		for _, key := range imageProps {
			src, ok := out[i].Props[key].(string)
			if !ok {
				continue
			}
			if name, found := assets[src]; found {
				out[i].Props["fileName"] = name
			}
		}
	}
	return out
}

// validatePayload checks a data URI's base64 body and returns the
// decoded bytes. The body is stripped of foreign characters and
// re-padded first; it must be non-empty, a multiple of four long, and
// survive a trial decode of its leading block.
func validatePayload(src string) ([]byte, bool) {
	body := payloadBody(src)
	if body == "" {
		return nil, false
	}
	clean := normalizeBase64(body)
	if len(clean) < 4 || len(clean)%4 != 0 {
		return nil, false
	}
	probe := clean
	if len(probe) > 100 {
		probe = probe[:100]
	}
	if _, err := base64.StdEncoding.DecodeString(probe); err != nil {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, false
	}
	return data, true
}

// sortedPayloads fixes the archive's asset order so identical input
// yields an identical archive.
func sortedPayloads(assets Mapping) []string {
	keys := make([]string, 0, len(assets))
	for src := range assets {
		keys = append(keys, src)
	}
	sort.Slice(keys, func(i, j int) bool {
		if assets[keys[i]] != assets[keys[j]] {
			return assets[keys[i]] < assets[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write archive entry %s: %w", name, err)
	}
	return nil
}

// HasEmbeddedImages reports whether any widget carries a data-URI
// image, used to log export size expectations up front.
func HasEmbeddedImages(widgets []types.Widget) bool {
	for _, w := range widgets {
		for _, key := range imageProps {
			if src, ok := w.Props[key].(string); ok && strings.HasPrefix(src, "data:") {
				return true
			}
		}
	}
	return false
}

// Preview returns the generated program text with image references
// resolved to their archive filenames, without building the archive.
func Preview(widgets []types.Widget, window types.WindowProperties) string {
	return codegen.Program(resolveImageRefs(widgets, Collect(widgets)), window)
}
