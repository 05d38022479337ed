package encode

import (
	"github.com/signadot/snow-format/go-snow/format"
	"github.com/signadot/snow-format/go-snow/tagset"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeMini selects the minimal Snow form.  ts is the Tagset the output is
// meant to be read with.
func EncodeMini(ts *tagset.Tagset) EncodeOption {
	return func(es *EncState) {
		es.mini = true
		es.tagset = ts
	}
}

// EncodeNewline terminates the output with a line feed.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
