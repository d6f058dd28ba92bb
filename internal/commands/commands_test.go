package commands_test

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topdown/internal/commands"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"grid --show", []string{"grid", "--show"}},
		{"cmd grid --show", []string{"grid", "--show"}},
		{"  order  1 -2 ", []string{"order", "1", "-2"}},
		{"", nil},
		{"cmd ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got := commands.Parse(tc.line)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecute(t *testing.T) {
	t.Run("should run with flags and positional arguments", func(t *testing.T) {
		// given
		r := commands.NewRegistry()
		fs := flag.NewFlagSet("spawn", flag.ContinueOnError)
		fast := fs.Bool("fast", false, "")
		var got []string
		r.Register("spawn", "spawn MESH", fs, func(args []string) error {
			got = args
			return nil
		})
		// when
		err := r.Execute([]string{"spawn", "--fast", "tank", "1"})
		// then
		require.NoError(t, err)
		assert.True(t, *fast)
		assert.Equal(t, []string{"tank", "1"}, got)
	})
	t.Run("should report missing and unknown commands", func(t *testing.T) {
		r := commands.NewRegistry()
		assert.ErrorIs(t, r.Execute(nil), commands.ErrEmpty)
		assert.ErrorIs(t, r.Execute([]string{"nope"}), commands.ErrUnknown)
	})
	t.Run("should report bad flags", func(t *testing.T) {
		r := commands.NewRegistry()
		r.Register("save", "save", nil, func([]string) error { return nil })
		assert.Error(t, r.Execute([]string{"save", "--force"}))
	})
	t.Run("should add the usage line to usage errors", func(t *testing.T) {
		r := commands.NewRegistry()
		r.Register("order", "order X Z", nil, func([]string) error { return commands.ErrUsage })
		err := r.Execute([]string{"order"})
		assert.ErrorIs(t, err, commands.ErrUsage)
		assert.Contains(t, err.Error(), "order X Z")
	})
	t.Run("should wrap run errors", func(t *testing.T) {
		r := commands.NewRegistry()
		boom := errors.New("boom")
		r.Register("despawn", "despawn", nil, func([]string) error { return boom })
		assert.ErrorIs(t, r.Execute([]string{"despawn"}), boom)
	})
	t.Run("should list names sorted", func(t *testing.T) {
		r := commands.NewRegistry()
		r.Register("b", "b", nil, nil)
		r.Register("a", "a", nil, nil)
		assert.Equal(t, []string{"a", "b"}, r.Names())
		u, ok := r.Usage("a")
		assert.True(t, ok)
		assert.Equal(t, "a", u)
	})
}

func TestToggle(t *testing.T) {
	r := commands.NewRegistry()
	var on bool
	r.Toggle("grid", func(v bool) { on = v })

	require.NoError(t, r.Execute([]string{"grid", "--show"}))
	assert.True(t, on)
	require.NoError(t, r.Execute([]string{"grid", "--hide"}))
	assert.False(t, on)
	assert.ErrorIs(t, r.Execute([]string{"grid"}), commands.ErrUsage)
	assert.ErrorIs(t, r.Execute([]string{"grid", "--show", "--hide"}), commands.ErrUsage)
}

func TestFloats(t *testing.T) {
	v, err := commands.Floats([]string{"1.5", "-2"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2}, v)
	_, err = commands.Floats([]string{"x"})
	assert.ErrorIs(t, err, commands.ErrUsage)
}
