package enummap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	t.Run("space separated keys keep their order", func(t *testing.T) {
		keys, err := ParseKeys("color sound")
		require.NoError(t, err)
		require.Equal(t, Keys{"color", "sound"}, keys)
	})

	t.Run("commas and dashes are normalized", func(t *testing.T) {
		keys, err := ParseKeys("top-speed, color")
		require.NoError(t, err)
		require.Equal(t, Keys{"top_speed", "color"}, keys)
	})

	t.Run("empty specification is a configuration error", func(t *testing.T) {
		for _, spec := range []string{"", "   ", " , "} {
			_, err := ParseKeys(spec)
			require.ErrorIs(t, err, ErrConfiguration, "spec %q", spec)
		}
	})

	t.Run("invalid token is named in the error", func(t *testing.T) {
		_, err := ParseKeys("color !bar")
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "!bar", ce.Token)
	})

	t.Run("leading digit is rejected", func(t *testing.T) {
		_, err := ParseKeys("1st")
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		_, err := ParseKeys("color colour color")
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "color", ce.Token)
	})
}

func TestNewKeys(t *testing.T) {
	t.Run("single empty key is an empty specification", func(t *testing.T) {
		_, err := NewKeys("")
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		require.Empty(t, ce.Token)
	})

	t.Run("empty key among others names the gap", func(t *testing.T) {
		_, err := NewKeys("color", " ")
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("index finds normalized keys", func(t *testing.T) {
		keys, err := NewKeys("top-speed", "color")
		require.NoError(t, err)
		require.Equal(t, 0, keys.Index("top-speed"))
		require.Equal(t, 1, keys.Index("color"))
		require.Equal(t, -1, keys.Index("sound"))
		require.Equal(t, "top_speed color", keys.String())
	})
}

func TestGoName(t *testing.T) {
	cases := map[string]string{
		"to_color":       "ToColor",
		"from_sound":     "FromSound",
		"as_direction":   "AsDirection",
		"with_top_speed": "WithTopSpeed",
		"color":          "Color",
		"from_http_URL":  "FromHttpURL",
		"to__double":     "ToDouble",
	}
	for in, want := range cases {
		require.Equal(t, want, GoName(in), in)
	}
}
