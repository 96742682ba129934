package tenox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func testRegistry(t testing.TB, props map[string][]string) *Registry {
	t.Helper()
	r, err := NewRegistry(props)
	require.NoError(t, err)
	return r
}

func TestNewRegistry_ReportsMalformedEntries(t *testing.T) {
	r, err := NewRegistry(map[string][]string{
		"p":    {"padding"},
		"void": nil,
		"":     {"color"},
		"gap":  {"gap", " "},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProperty)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), `"void"`)

	assert.Equal(t, []string{"p"}, r.Types())
}

func TestNewRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry(DefaultProperties())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultProperties()), r.Len())
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"backgroundColor": "background-color",
		"padding":         "padding",
		"margin-top":      "margin-top",
		"--brandColor":    "--brandColor",
		"zIndex":          "z-index",
	}
	for in, want := range tests {
		assert.Equal(t, want, KebabCase(in), in)
	}
}

func TestRegistryTargets(t *testing.T) {
	r := testRegistry(t, DefaultProperties())

	tests := []struct {
		typ  string
		want []Target
	}{
		{"ph", []Target{
			{Kind: KindDirect, Property: "padding-left"},
			{Kind: KindDirect, Property: "padding-right"},
		}},
		{"blur", []Target{{Kind: KindFilter, Property: "filter", Func: "blur"}}},
		{"back-blur", []Target{{Kind: KindBackdropFilter, Property: "backdrop-filter", Func: "blur"}}},
		{"rt", []Target{{Kind: KindTransform, Property: "transform", Func: "rotate"}}},
		{"move-x", []Target{{Kind: KindTransform, Property: "transform", Func: "translateX"}}},
		{"grid-col", []Target{{Kind: KindGridTemplate, Property: "grid-template-columns"}}},
		{"auto-grid-row", []Target{{Kind: KindGridAutoFit, Property: "grid-template-rows"}}},
		{"flex-auto", []Target{{Kind: KindFlexShorthand, Property: "flex", Func: "1 1"}}},
		{"initial-flex", []Target{{Kind: KindFlexShorthand, Property: "flex", Func: "0 1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			got, ok := r.Targets(tt.typ)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryDefine_UnknownFunctionDropped(t *testing.T) {
	r := testRegistry(t, nil)
	require.NoError(t, r.Define("wobble", TagTransform))

	targets, ok := r.Targets("wobble")
	assert.True(t, ok)
	assert.Empty(t, targets)
}

func TestRegistryDefine_Invalid(t *testing.T) {
	r := testRegistry(t, nil)

	assert.ErrorIs(t, r.Define("", "color"), ErrInvalidProperty)
	assert.ErrorIs(t, r.Define("x"), ErrInvalidProperty)
	assert.ErrorIs(t, r.Define("x", " "), ErrInvalidProperty)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryDefineProps(t *testing.T) {
	r := testRegistry(t, nil)

	err := r.DefineProps(map[string]any{
		"a": "color",
		"b": []any{"marginLeft", "marginRight"},
		"c": 42,
		"d": []any{"x", 1},
		"e": []string{"gap"},
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, ErrInvalidProperty)

	assert.Equal(t, []string{"a", "b", "e"}, r.Types())
	props, _ := r.Properties("b")
	assert.Equal(t, []string{"marginLeft", "marginRight"}, props)
}

func TestRegistryDefine_Overwrites(t *testing.T) {
	r := testRegistry(t, map[string][]string{"tc": {"color"}})
	require.NoError(t, r.Define("tc", "outlineColor"))

	targets, _ := r.Targets("tc")
	assert.Equal(t, []Target{{Kind: KindDirect, Property: "outline-color"}}, targets)
}

func TestRegistryMergeAndClone(t *testing.T) {
	base := testRegistry(t, map[string][]string{"p": {"padding"}, "m": {"margin"}})
	extra := testRegistry(t, map[string][]string{"m": {"marginTop"}, "gap": {"gap"}})

	clone := base.Clone()
	base.Merge(extra)
	base.Merge(nil)

	assert.Equal(t, []string{"gap", "m", "p"}, base.Types())
	props, _ := base.Properties("m")
	assert.Equal(t, []string{"marginTop"}, props)

	assert.Equal(t, 2, clone.Len(), "clone is unaffected by later merges")
	props, _ = clone.Properties("m")
	assert.Equal(t, []string{"margin"}, props)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "transform", KindTransform.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.True(t, KindFilter.Appends())
	assert.True(t, KindBackdropFilter.Appends())
	assert.True(t, KindTransform.Appends())
	assert.False(t, KindDirect.Appends())
	assert.False(t, KindGridTemplate.Appends())
}
