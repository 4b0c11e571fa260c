package enummap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func animalDef() *Definition {
	return &Definition{
		Type: "Animal",
		Members: []MemberDef{
			{Name: "ChocolateLab", Value: Tuple{"brown", "woof"}},
			{Name: "TabbyCat", Value: Tuple{"orange", "meow"}},
			{Name: "Lion", Value: Tuple{"yellow", "roar"}},
		},
	}
}

func mustKeys(t *testing.T, spec string) Keys {
	t.Helper()
	keys, err := ParseKeys(spec)
	require.NoError(t, err)
	return keys
}

func TestCompile(t *testing.T) {
	t.Run("builds one accessor pair per key", func(t *testing.T) {
		p, err := Compile(mustKeys(t, "color sound"), animalDef(), DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, []string{"ChocolateLab", "TabbyCat", "Lion"}, p.Members)
		require.Len(t, p.Accessors, 2)
		require.Equal(t, "to_color", p.Accessors[0].To.Name)
		require.Equal(t, "ToColor", p.Accessors[0].To.GoName)
		require.Equal(t, "from_sound", p.Accessors[1].From.Name)
		require.Equal(t, "FromSound", p.Accessors[1].From.GoName)
		require.Equal(t, Reverse, p.Accessors[1].From.Kind)
		require.Equal(t, "woof", p.Value(0, 1))
	})

	t.Run("round trip holds for unique values", func(t *testing.T) {
		p, err := Compile(mustKeys(t, "color sound"), animalDef(), DefaultOptions())
		require.NoError(t, err)
		for i := range p.Keys {
			for m := range p.Members {
				require.Equal(t, m, p.Find(i, p.Value(m, i)))
			}
		}
	})

	t.Run("first declared member wins a shared value", func(t *testing.T) {
		def := &Definition{Type: "Terrain", Members: []MemberDef{
			{Name: "Desert", Value: Tuple{"sand", "none"}},
			{Name: "Beach", Value: Tuple{"sand", "lots"}},
		}}
		p, err := Compile(mustKeys(t, "ground water"), def, DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, 0, p.Find(0, "sand"))
		require.Equal(t, []int{0, 1}, p.FindAll(0, "sand"))
		require.Equal(t, -1, p.Find(1, "some"))
		require.Equal(t, []int{}, p.FindAll(1, "some"))
	})

	t.Run("equality does not coerce", func(t *testing.T) {
		def := &Definition{Type: "Level", Members: []MemberDef{{Name: "Low", Value: 1}}}
		p, err := Compile(mustKeys(t, "rank"), def, DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, 0, p.Find(0, 1))
		require.Equal(t, -1, p.Find(0, int64(1)))
		require.Equal(t, -1, p.Find(0, "1"))
	})

	t.Run("scalar is wrapped for a single key", func(t *testing.T) {
		def := &Definition{Type: "Cardinal", Members: []MemberDef{
			{Name: "North", Value: "up"},
			{Name: "West", Value: Tuple{"left"}},
		}}
		p, err := Compile(mustKeys(t, "direction"), def, NewOptions(WithToPrefix("as_"), WithFromPrefix("with_")))
		require.NoError(t, err)
		require.Equal(t, "AsDirection", p.Accessors[0].To.GoName)
		require.Equal(t, "WithDirection", p.Accessors[0].From.GoName)
		require.Equal(t, 1, p.Find(0, "left"))
	})

	t.Run("missing value is a structural error naming the member", func(t *testing.T) {
		def := &Definition{Type: "Car", Members: []MemberDef{
			{Name: "Racecar", Value: Tuple{"fast", "red", "loud"}},
			{Name: "Hybrid", Value: Tuple{"slow", "blue"}},
		}}
		p, err := Compile(mustKeys(t, "speed color noise"), def, DefaultOptions())
		require.Nil(t, p)
		var se *StructuralError
		require.ErrorAs(t, err, &se)
		require.Equal(t, "Hybrid", se.Member)
		require.Equal(t, 3, se.Expected)
		require.Equal(t, 2, se.Actual)
		require.EqualError(t, err, "Car.Hybrid: has 2 mapped values, expected 3")
	})

	t.Run("extra value for a single key is a structural error", func(t *testing.T) {
		def := &Definition{Type: "Car", Members: []MemberDef{
			{Name: "Racecar", Value: "fast"},
			{Name: "Hybrid", Value: Tuple{"slow", "blue"}},
		}}
		_, err := Compile(mustKeys(t, "speed"), def, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
	})

	t.Run("scalar for several keys is a structural error", func(t *testing.T) {
		def := &Definition{Type: "Car", Members: []MemberDef{{Name: "Racecar", Value: "fast"}}}
		_, err := Compile(mustKeys(t, "speed color"), def, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
	})

	t.Run("uncomparable value is a structural error", func(t *testing.T) {
		def := &Definition{Type: "Bag", Members: []MemberDef{{Name: "Full", Value: []string{"a"}}}}
		_, err := Compile(mustKeys(t, "items"), def, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
	})

	t.Run("comparable type holding an uncomparable value is a structural error", func(t *testing.T) {
		def := &Definition{Type: "Box", Members: []MemberDef{
			{Name: "Number", Value: boxed{V: 1}},
			{Name: "List", Value: boxed{V: []int{1}}},
		}}
		_, err := Compile(mustKeys(t, "box"), def, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
		var se *StructuralError
		require.ErrorAs(t, err, &se)
		require.Equal(t, "List", se.Member)
	})

	t.Run("comparable type holding comparable values compiles", func(t *testing.T) {
		def := &Definition{Type: "Box", Members: []MemberDef{{Name: "Number", Value: boxed{V: 1}}}}
		p, err := Compile(mustKeys(t, "box"), def, DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, 0, p.Find(0, boxed{V: 1}))
	})

	t.Run("duplicate member is a structural error", func(t *testing.T) {
		def := &Definition{Type: "Twin", Members: []MemberDef{{Name: "A", Value: 1}, {Name: "A", Value: 2}}}
		_, err := Compile(mustKeys(t, "n"), def, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
	})

	t.Run("nil definition is not a closed enumeration", func(t *testing.T) {
		_, err := Compile(mustKeys(t, "bar"), nil, DefaultOptions())
		require.ErrorIs(t, err, ErrStructural)
	})

	t.Run("keys are validated before the target", func(t *testing.T) {
		_, err := Compile(Keys{"!bar"}, nil, DefaultOptions())
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("invalid prefix is a configuration error", func(t *testing.T) {
		_, err := Compile(mustKeys(t, "name"), animalDef(), NewOptions(WithToPrefix("1to_")))
		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "1to_", ce.Token)
	})
}

func TestCompileCollisions(t *testing.T) {
	existing := func(names ...string) Surface {
		return SurfaceFunc(func(op Operation) bool {
			for _, n := range names {
				if op.GoName == n {
					return true
				}
			}
			return false
		})
	}

	t.Run("pre-existing operation fails by default", func(t *testing.T) {
		def := animalDef()
		def.Surface = existing("FromSound")
		p, err := Compile(mustKeys(t, "color sound"), def, DefaultOptions())
		require.Nil(t, p)
		var ce *CollisionError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "FromSound", ce.Operation)
		require.False(t, ce.Generated)
	})

	t.Run("allow override keeps the pre-existing operation", func(t *testing.T) {
		def := animalDef()
		def.Surface = existing("ToColor")
		p, err := Compile(mustKeys(t, "color sound"), def, NewOptions(WithAllowOverride(true)))
		require.NoError(t, err)
		require.True(t, p.Accessors[0].To.Skipped)
		_, ok := p.Operation("to_color")
		require.False(t, ok)
		_, ok = p.Operation("FromColor")
		require.True(t, ok)
		require.Len(t, p.Operations(), 3)
	})

	t.Run("names generated twice in one pass always fail", func(t *testing.T) {
		opts := NewOptions(WithToPrefix("x_"), WithFromPrefix("x_"), WithAllowOverride(true))
		_, err := Compile(mustKeys(t, "color"), animalDef(), opts)
		var ce *CollisionError
		require.ErrorAs(t, err, &ce)
		require.True(t, ce.Generated)
		require.Equal(t, "XColor", ce.Operation)
	})

	t.Run("names differing only by underscores collide", func(t *testing.T) {
		def := &Definition{Type: "Odd", Members: []MemberDef{{Name: "A", Value: Tuple{1, 2}}}}
		_, err := Compile(Keys{"a_b", "aB"}, def, DefaultOptions())
		require.ErrorIs(t, err, ErrCollision)
	})
}
