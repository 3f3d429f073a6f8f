package pathstringplugin

import (
	"fmt"
	"log/slog"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/pathstring/pkg/kclplugin/plugins"
	"github.com/macropower/pathstring/pkg/pathstring"
)

const pluginName = "pathstring"

// Register registers the pathstring [Plugin] with the KCL plugin system.
func Register() {
	plugin.RegisterPlugin(Plugin)
}

// Plugin is the KCL plugin that exposes lexical path operations. Every method
// takes path strings and returns raw path strings, so separators and trailing
// separators written in KCL survive the call.
var Plugin = plugin.Plugin{
	Name: pluginName,
	MethodMap: map[string]plugin.MethodSpec{
		"normalize": unary("normalize", "str", func(p pathstring.Path) (any, error) {
			return p.Normalize().RawPath(), nil
		}),
		"parent": unary("parent", "str", func(p pathstring.Path) (any, error) {
			parent, ok := p.Parent()
			if !ok {
				return nil, nil
			}

			return parent.RawPath(), nil
		}),
		"file_name": unary("file_name", "str", func(p pathstring.Path) (any, error) {
			return p.FileName().RawPath(), nil
		}),
		"root": unary("root", "str", func(p pathstring.Path) (any, error) {
			root, ok := p.Root()
			if !ok {
				return nil, nil
			}

			return root.RawPath(), nil
		}),
		"name_count": unary("name_count", "int", func(p pathstring.Path) (any, error) {
			return p.NameCount(), nil
		}),
		"segments": unary("segments", "[str]", func(p pathstring.Path) (any, error) {
			return p.Segments(), nil
		}),
		"is_absolute": unary("is_absolute", "bool", func(p pathstring.Path) (any, error) {
			return p.IsAbsolute(), nil
		}),
		"portable": unary("portable", "str", func(p pathstring.Path) (any, error) {
			return p.PortablePath(), nil
		}),
		"native": unary("native", "str", func(p pathstring.Path) (any, error) {
			return p.NativePath(), nil
		}),
		"resolve": binary("resolve", "str", func(base, other pathstring.Path) (any, error) {
			return base.Resolve(other).RawPath(), nil
		}),
		"relativize": binary("relativize", "str", func(base, other pathstring.Path) (any, error) {
			return base.Relativize(other).RawPath(), nil
		}),
		"get": method("get", []string{"str", "int"}, "str",
			func(safeArgs *plugins.SafeMethodArgs, p pathstring.Path) (any, error) {
				index, err := safeArgs.IntArg(1)
				if err != nil {
					return nil, err
				}

				name, err := p.Get(index)
				if err != nil {
					return nil, err //nolint:wrapcheck // Wrapped by the method body.
				}

				return name.RawPath(), nil
			},
		),
		"subpath": method("subpath", []string{"str", "int", "int"}, "str",
			func(safeArgs *plugins.SafeMethodArgs, p pathstring.Path) (any, error) {
				begin, err := safeArgs.IntArg(1)
				if err != nil {
					return nil, err
				}

				end, err := safeArgs.IntArg(2)
				if err != nil {
					return nil, err
				}

				sub, err := p.Subpath(begin, end)
				if err != nil {
					return nil, err //nolint:wrapcheck // Wrapped by the method body.
				}

				return sub.RawPath(), nil
			},
		),
		"match": method("match", []string{"str", "str"}, "bool",
			func(safeArgs *plugins.SafeMethodArgs, p pathstring.Path) (any, error) {
				pattern, err := safeArgs.StrArg(1)
				if err != nil {
					return nil, err
				}

				return p.Match(pattern)
			},
		),
	},
}

// method builds a [plugin.MethodSpec] whose first argument is a path. The
// optional "scheme" keyword argument selects the scheme of every parsed path.
func method(
	name string,
	argsType []string,
	resultType string,
	fn func(safeArgs *plugins.SafeMethodArgs, p pathstring.Path) (any, error),
) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   argsType,
			ResultType: resultType,
		},
		Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
			logger := slog.With(
				slog.String("plugin", pluginName),
				slog.String("method", name),
			)
			logger.Debug("invoking kcl plugin")

			safeArgs := &plugins.SafeMethodArgs{Args: args}

			p, err := pathArg(safeArgs, 0)
			if err != nil {
				return nil, fmt.Errorf("invalid argument: %w", err)
			}

			result, err := fn(safeArgs, p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			logger.Debug("returning results")

			return &plugin.MethodResult{V: result}, nil
		},
	}
}

func unary(name, resultType string, fn func(p pathstring.Path) (any, error)) plugin.MethodSpec {
	return method(name, []string{"str"}, resultType,
		func(_ *plugins.SafeMethodArgs, p pathstring.Path) (any, error) {
			return fn(p)
		},
	)
}

func binary(name, resultType string, fn func(base, other pathstring.Path) (any, error)) plugin.MethodSpec {
	return method(name, []string{"str", "str"}, resultType,
		func(safeArgs *plugins.SafeMethodArgs, base pathstring.Path) (any, error) {
			other, err := pathArg(safeArgs, 1)
			if err != nil {
				return nil, err
			}

			return fn(base, other)
		},
	)
}

func pathArg(safeArgs *plugins.SafeMethodArgs, i int) (pathstring.Path, error) {
	s, err := safeArgs.StrArg(i)
	if err != nil {
		return pathstring.Path{}, err //nolint:wrapcheck // Wrapped by the method body.
	}

	scheme := pathstring.Scheme(safeArgs.StrKwArg("scheme", string(pathstring.LocalScheme)))

	return pathstring.NewWithScheme(scheme, s), nil
}
