package export

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/buildfy/backend/internal/shared/types"
	"github.com/buildfy/backend/internal/shared/utils"
)

// imageProps are the widget properties that may carry an embedded
// image as a data URI.
var imageProps = []string{"src", "fileName"}

// Mapping relates an embedded data-URI payload to its generated
// archive filename. Identical payloads across widgets share one entry.
type Mapping map[string]string

// Collect scans the widget graph for embedded image payloads and
// assigns each distinct payload a content-addressed filename, so the
// same image dropped on two widgets lands in the archive exactly once.
func Collect(widgets []types.Widget) Mapping {
	m := make(Mapping)
	for _, w := range widgets {
		for _, key := range imageProps {
			src, ok := w.Props[key].(string)
			if !ok || !strings.HasPrefix(src, "data:") {
				continue
			}
			if _, seen := m[src]; seen {
				continue
			}
			m[src] = assetName(src)
		}
	}
	return m
}

// assetName derives a stable filename from the payload itself. The
// extension comes from sniffing the decoded bytes; payloads that do not
// decode still get a name (.png) so the exporter can substitute the
// placeholder under it.
func assetName(src string) string {
	name := "image_" + utils.DefaultHasher().ShortHash([]byte(src))
	if data, err := decodePayload(src); err == nil {
		return name + mimetype.Detect(data).Extension()
	}
	return name + ".png"
}

// decodePayload extracts and decodes the base64 body of a data URI,
// stripping foreign characters and restoring padding first.
func decodePayload(src string) ([]byte, error) {
	body := normalizeBase64(payloadBody(src))
	return base64.StdEncoding.DecodeString(body)
}

// payloadBody returns everything after the first comma.
func payloadBody(src string) string {
	if i := strings.IndexByte(src, ','); i >= 0 {
		return src[i+1:]
	}
	return ""
}

// normalizeBase64 drops any character outside the base64 alphabet and
// re-pads to a multiple of four.
func normalizeBase64(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	for _, r := range body {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '/':
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if pad := len(clean) % 4; pad != 0 {
		clean += strings.Repeat("=", 4-pad)
	}
	return clean
}
