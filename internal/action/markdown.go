package action

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// imageMarkdown converts one API image entry into a markdown reference.
// HTTP(S) URLs are referenced directly; anything else is treated as base64
// image bytes and embedded as a data URI.
func imageMarkdown(entry string) string {
	if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
		return "![image](" + entry + ")"
	}
	return "![image](data:image/" + sniffFormat(entry) + ";base64," + entry + ")"
}

// sniffFormat determines the image format of base64-encoded bytes so the data
// URI carries the right MIME type. Unrecognisable data falls back to png, the
// format the API returns in practice.
func sniffFormat(b64 string) string {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "png"
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "png"
	}

	return format
}
