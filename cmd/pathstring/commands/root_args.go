package commands

import "github.com/macropower/pathstring/pkg/pathstring"

const defaultScheme = pathstring.LocalScheme

type RootArgs struct {
	logLevel   *string
	logFormat  *string
	scheme     *string
	cpuProfile *string
	memProfile *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:   new(string),
		logFormat:  new(string),
		scheme:     new(string),
		cpuProfile: new(string),
		memProfile: new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetScheme() pathstring.Scheme {
	return pathstring.Scheme(*a.scheme)
}

func (a *RootArgs) GetCPUProfile() string {
	return *a.cpuProfile
}

func (a *RootArgs) GetMemProfile() string {
	return *a.memProfile
}

// Parse parses s as a path on the filesystem selected by --scheme.
func (a *RootArgs) Parse(s string) pathstring.Path {
	return pathstring.NewWithScheme(a.GetScheme(), s)
}
