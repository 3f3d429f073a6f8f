package plugins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/pathstring/pkg/kclplugin/plugins"
	"github.com/macropower/pathstring/pkg/pserrors"
)

func TestSafeMethodArgs_StrArg(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		args    []any
		want    string
		index   int
	}{
		"present": {
			args: []any{"a/b"},
			want: "a/b",
		},
		"second": {
			args:  []any{"a", "b"},
			index: 1,
			want:  "b",
		},
		"missing": {
			args:    []any{},
			wantErr: pserrors.ErrInvalidArguments,
		},
		"wrong type": {
			args:    []any{42},
			wantErr: pserrors.ErrInvalidArguments,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			safeArgs := plugins.SafeMethodArgs{Args: &plugin.MethodArgs{Args: tc.args}}

			got, err := safeArgs.StrArg(tc.index)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSafeMethodArgs_IntArg(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		arg     any
		want    int
	}{
		"int":         {arg: 3, want: 3},
		"int64":       {arg: int64(4), want: 4},
		"whole float": {arg: 5.0, want: 5},
		"fraction":    {arg: 1.5, wantErr: pserrors.ErrInvalidArguments},
		"string":      {arg: "1", wantErr: pserrors.ErrInvalidArguments},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			safeArgs := plugins.SafeMethodArgs{Args: &plugin.MethodArgs{Args: []any{tc.arg}}}

			got, err := safeArgs.IntArg(0)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSafeMethodArgs_KwArgs(t *testing.T) {
	t.Parallel()

	safeArgs := plugins.SafeMethodArgs{Args: &plugin.MethodArgs{
		KwArgs: map[string]any{"scheme": "mem:///", "native": true, "bad": 1},
	}}

	assert.True(t, safeArgs.Exists("scheme"))
	assert.False(t, safeArgs.Exists("other"))
	assert.Equal(t, "mem:///", safeArgs.StrKwArg("scheme", ""))
	assert.Equal(t, "def", safeArgs.StrKwArg("other", "def"))
	assert.Equal(t, "def", safeArgs.StrKwArg("bad", "def"))
	assert.True(t, safeArgs.BoolKwArg("native", false))
	assert.True(t, safeArgs.BoolKwArg("other", true))
}
