package pathstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/pathstring/pkg/pathstring"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"parent in middle":           {input: "a/b/../c", want: "a/c"},
		"leading parent kept":        {input: "../a", want: "../a"},
		"parent above relative":      {input: "a/../../b", want: "../b"},
		"parent above root dropped":  {input: "/../a", want: "/a"},
		"trailing separator kept":    {input: "a/b/../", want: "a/"},
		"windows parent":             {input: `C:\a\..\b`, want: `C:\b`},
		"windows self and separator": {input: "C:/a/./b", want: `C:\a\b`},
		"self only":                  {input: "./", want: ""},
		"parents only":               {input: "../../", want: "../../"},
		"root":                       {input: "/", want: "/"},
		"collapses to empty":         {input: "a/..", want: ""},
		"self in middle":             {input: "a/./b/", want: "a/b/"},
		"already normal":             {input: "/usr/lib", want: "/usr/lib"},
		"empty":                      {input: "", want: ""},
		"mixed separators":           {input: `a\b/../c`, want: `a\c`},
		"root run":                   {input: "///", want: "/"},
		"trailing separator run":     {input: "a///", want: "a/"},
		"absolute trailing run":      {input: "/a///", want: "/a/"},
		"self then separator run":    {input: ".///", want: ""},
		"popped into separator run":  {input: "x/..///", want: ""},
		"empty names after parent":   {input: "a///b/..", want: "a/"},
		"windows trailing run":       {input: `C:\x\\\`, want: `C:\x\`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := pathstring.New(tc.input)
			got := p.Normalize()

			assert.Equal(t, tc.want, got.RawPath())
			assert.Equal(t, p.IsAbsolute(), got.IsAbsolute())
			assert.Equal(t, p.Separator(), got.Separator())
			assert.Equal(t, got.RawPath(), got.Normalize().RawPath())
		})
	}
}

func TestNormalizeKeepsRoot(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"colon in first name":  {input: "./c:x/y", want: "./c:x/y"},
		"leading empty name":   {input: "x/..//a", want: ".//a"},
		"drive relative empty": {input: "C:x/..//a", want: `C:.\\a`},
		"absolute empty name":  {input: `C:\x\..\\a`, want: `C:\.\\a`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := pathstring.New(tc.input)
			got := p.Normalize()

			assert.Equal(t, tc.want, got.RawPath())
			assert.Equal(t, p.IsAbsolute(), got.IsAbsolute())
			assert.Equal(t, p.Flavor(), got.Flavor())

			want, _ := p.Root()
			root, _ := got.Root()
			assert.Equal(t, want.RawPath(), root.RawPath())
			assert.True(t, got.Equal(got.Normalize()))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		base  string
		other string
		want  string
	}{
		"trailing separator":          {base: "/a/b/", other: "c", want: "/a/b/c"},
		"relative join":               {base: "/a/b", other: "c/d", want: "/a/b/c/d"},
		"empty base":                  {base: "", other: "c", want: "c"},
		"absolute other":              {base: "a", other: "/b", want: "/b"},
		"drive substitution":          {base: `C:\a`, other: `\b`, want: `C:\b`},
		"drive substitution posix":    {base: `C:\a`, other: "/b", want: `C:\b`},
		"other drive absolute":        {base: `C:\a`, other: `D:\b`, want: `D:\b`},
		"other drive relative":        {base: `C:\a`, other: "D:b", want: "D:b"},
		"same drive relative":         {base: `C:\a`, other: "c:b", want: `C:\a\b`},
		"empty other":                 {base: "/a", other: "", want: "/a"},
		"root base":                   {base: "/", other: "a", want: "/a"},
		"separator conversion":        {base: "a/b", other: `c\d`, want: "a/b/c/d"},
		"rooted other on rootless":    {base: "a", other: "C:b", want: "C:b"},
		"parent names kept lexically": {base: "/a/b", other: "../c", want: "/a/b/../c"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pathstring.New(tc.base).Resolve(pathstring.New(tc.other))

			assert.Equal(t, tc.want, got.RawPath())
		})
	}
}

func TestResolveKeepsScheme(t *testing.T) {
	t.Parallel()

	base := pathstring.NewWithScheme("mem:///", "/a")
	got := base.Resolve(pathstring.New("b"))

	assert.Equal(t, pathstring.Scheme("mem:///"), got.Scheme())
	assert.Equal(t, "/a/b", got.RawPath())
}

func TestRelativize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		base  string
		other string
		want  string
	}{
		"windows sibling":     {base: `C:\a\b`, other: `C:\a\c\d`, want: `..\c\d`},
		"posix sibling":       {base: "/a", other: "/b", want: "../b"},
		"different drives":    {base: `C:\a`, other: `D:\b`, want: `D:\b`},
		"empty base":          {base: "", other: "x/y", want: "x/y"},
		"absolute base empty": {base: "/a", other: "", want: ""},
		"relative base empty": {base: "a", other: "", want: ".."},
		"child trailing":      {base: "/a/b", other: "/a/b/c/", want: "c/"},
		"same path":           {base: "/a/b", other: "/a/b", want: ""},
		"rootless other":      {base: "/a", other: "b", want: "b"},
		"drive relative base": {base: "C:a", other: `C:\b`, want: `\b`},
		"equivalent roots":    {base: "/a", other: `\b`, want: `..\b`},
		"relative child":      {base: "a", other: "a/b", want: "b"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pathstring.New(tc.base).Relativize(pathstring.New(tc.other))

			assert.Equal(t, tc.want, got.RawPath())
		})
	}
}

func TestRelativizeResolveRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		base  string
		other string
		exact bool
	}{
		"descendant": {
			base:  "/a/b",
			other: "/a/b/c/d",
			exact: true,
		},
		"relative descendant": {
			base:  "a",
			other: "a/b/c",
			exact: true,
		},
		"windows descendant": {
			base:  `C:\src`,
			other: `C:\src\main\res`,
			exact: true,
		},
		"sibling": {
			base:  "/a/b",
			other: "/a/c",
		},
		"cousin": {
			base:  "/a/b/c",
			other: "/a/x/y",
		},
		"windows sibling": {
			base:  `C:\a\b`,
			other: `C:\a\c\d`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			base := pathstring.New(tc.base)
			other := pathstring.New(tc.other)
			got := base.Resolve(base.Relativize(other))

			if tc.exact {
				assert.True(t, got.Equal(other), "got %s, want %s", got, other)
			}

			assert.True(t, got.Normalize().Equal(other.Normalize()), "got %s, want %s", got, other)
		})
	}
}

func BenchmarkResolve(b *testing.B) {
	base := pathstring.New("/home/user/project")
	other := pathstring.New("src/main/res/values/strings.xml")

	b.ReportAllocs()

	for b.Loop() {
		_ = base.Resolve(other)
	}
}

func BenchmarkNormalize(b *testing.B) {
	p := pathstring.New("/a/b/./c/../d/../../e/f")

	b.ReportAllocs()

	for b.Loop() {
		_ = p.Normalize()
	}
}
