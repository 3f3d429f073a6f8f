package outputs

import (
	"strings"

	"github.com/macropower/pathstring/pkg/pathstring"
)

// Format is the encoding of a manifest.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Compression is the compression applied to an encoded manifest.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// Options control how a manifest is encoded.
type Options struct {
	Format      Format
	Compression Compression
}

// OptionsFor derives [Options] from the file name of a manifest, e.g.
// "output.yaml.zst" is zstd-compressed YAML. Unknown extensions select
// uncompressed JSON.
func OptionsFor(file pathstring.Path) Options {
	name := strings.ToLower(file.FileName().RawPath())

	var opts Options

	switch {
	case strings.HasSuffix(name, ".gz"):
		opts.Compression = CompressionGzip
		name = strings.TrimSuffix(name, ".gz")
	case strings.HasSuffix(name, ".zst"):
		opts.Compression = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	}

	opts.Format = FormatJSON
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		opts.Format = FormatYAML
	}

	return opts
}
