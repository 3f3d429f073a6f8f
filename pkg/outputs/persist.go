package outputs

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"sigs.k8s.io/yaml"

	"github.com/macropower/pathstring/pkg/pathstring"
	"github.com/macropower/pathstring/pkg/pserrors"
)

// Persist encodes e to w. Each output path on the scheme of base is stored
// relative to base, unless it cannot be expressed that way (for example, when
// it is on another drive). Output paths on other schemes are stored as-is.
// Stored bare paths are read back on the scheme of the base given to [Load].
func Persist(w io.Writer, e *Elements, base pathstring.Path, opts Options) error {
	logger := slog.With(
		slog.String("base", base.String()),
		slog.String("format", string(opts.Format)),
	)

	stored := &Elements{
		Version: e.Version,
		Outputs: make([]Output, len(e.Outputs)),
	}
	if stored.Version == 0 {
		stored.Version = CurrentVersion
	}

	for i, o := range e.Outputs {
		o.Type = CanonicalType(o.Type)
		if !base.IsEmpty() && o.Path.Scheme() == base.Scheme() {
			o.Path = pathstring.New(base.Relativize(o.Path).RawPath())
		}

		stored.Outputs[i] = o
	}

	data, err := encode(stored, opts.Format)
	if err != nil {
		return err
	}

	logger.Debug("writing manifest", slog.Int("outputs", len(stored.Outputs)))

	cw, err := compressor(w, opts.Compression)
	if err != nil {
		return err
	}

	if _, err := cw.Write(data); err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrWrite, err)
	}

	if err := cw.Close(); err != nil {
		return fmt.Errorf("%w: %w", pserrors.ErrWrite, err)
	}

	return nil
}

// Load decodes a manifest from r, validates it, and resolves each output path
// on the scheme of base against base. All invalid outputs are reported
// together.
func Load(r io.Reader, base pathstring.Path, opts Options) (*Elements, error) {
	dr, err := decompressor(r, opts.Compression)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dr.Close() }()

	data, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pserrors.ErrRead, err)
	}

	if opts.Format == FormatYAML {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", pserrors.ErrInvalidFormat, err)
		}
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var e Elements
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", pserrors.ErrInvalidFormat, err)
	}

	if e.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: manifest version %d is newer than %d",
			pserrors.ErrInvalidFormat, e.Version, CurrentVersion)
	}

	var merr *multierror.Error

	seen := make(map[outputKey]int, len(e.Outputs))

	for i, o := range e.Outputs {
		o.Type = CanonicalType(o.Type)

		if o.Path.IsEmpty() {
			merr = multierror.Append(merr, fmt.Errorf("%w: output %d: empty path", pserrors.ErrInvalidFormat, i))

			continue
		}

		k := outputKey{Type: o.Type, Path: o.Path.Key()}
		if j, ok := seen[k]; ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: output %d: duplicates output %d",
				pserrors.ErrInvalidFormat, i, j))

			continue
		}

		seen[k] = i

		if o.Path.Scheme() == pathstring.LocalScheme {
			o.Path = pathstring.NewWithScheme(base.Scheme(), o.Path.RawPath())
		}

		if o.Path.Scheme() == base.Scheme() {
			o.Path = base.Resolve(o.Path)
		}
		e.Outputs[i] = o
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &e, nil
}

func encode(e *Elements, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", pserrors.ErrJSONMarshal, err)
		}

		return append(data, '\n'), nil

	case FormatYAML:
		data, err := yaml.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", pserrors.ErrYAMLMarshal, err)
		}

		return data, nil
	}

	return nil, fmt.Errorf("%w: unknown manifest format %q", pserrors.ErrInvalidFormat, format)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("create zstd writer: %w", err)
		}

		return enc, nil
	}

	return nil, fmt.Errorf("%w: unknown compression %q", pserrors.ErrInvalidFormat, c)
}

type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()

	return nil
}

func decompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", pserrors.ErrInvalidFormat, err)
		}

		return gr, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}

		return zstdReadCloser{dec}, nil
	}

	return nil, fmt.Errorf("%w: unknown compression %q", pserrors.ErrInvalidFormat, c)
}
