package shape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

func px(n float64) css.Value { return css.Length(n, "px") }

func TestParseRadius(t *testing.T) {
	t.Parallel()

	scalar, err := ParseRadius("8px")
	require.NoError(t, err)
	require.False(t, scalar.IsList())
	require.Equal(t, 1, scalar.Len())

	list, err := ParseRadius("2px calc(1px + 2px) 0")
	require.NoError(t, err)
	require.True(t, list.IsList())
	require.Equal(t, 3, list.Len())
	require.Equal(t, "2px calc(1px + 2px) 0", list.String())

	_, err = ParseRadius("   ")
	require.Error(t, err)
}

func TestExpandFollowsShorthand(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"8px":             "8px 8px 8px 8px",
		"1px 2px":         "1px 2px 1px 2px",
		"1px 2px 3px":     "1px 2px 3px 2px",
		"1px 2px 3px 4px": "1px 2px 3px 4px",
	}
	for input, want := range cases {
		corners, err := MustParseRadius(input).Expand()
		require.NoError(t, err)
		require.Equal(t, want, Corners(corners[:]...).String(), "expanding %q", input)
	}
}

func TestFlipRadius(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "four corners swap pairs", input: "0 4px 4px 0", want: "4px 0 0 4px"},
		{name: "four distinct", input: "1px 2px 3px 4px", want: "2px 1px 4px 3px"},
		{name: "three values expand", input: "1px 2px 3px", want: "2px 1px 2px 3px"},
		{name: "two values swap", input: "0 8px", want: "8px 0"},
		{name: "scalar unchanged", input: "8px", want: "8px"},
		{name: "keyword unchanged", input: "small", want: "small"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flipped, err := FlipRadius(MustParseRadius(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.want, flipped.String())
		})
	}
}

func TestFlipRadiusSingleValueListKeepsShape(t *testing.T) {
	t.Parallel()

	single := Corners(px(3))
	flipped, err := FlipRadius(single)
	require.NoError(t, err)
	require.True(t, flipped.Equal(single))
}

func TestFlipRadiusIsSelfInverse(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"1px 2px 3px 4px", "0 4px 4px 0", "0 8px", "var(--a) 2px"} {
		r := MustParseRadius(input)
		once, err := FlipRadius(r)
		require.NoError(t, err)
		twice, err := FlipRadius(once)
		require.NoError(t, err)
		require.True(t, twice.Equal(r), "flip(flip(%q)) = %q", input, twice)
	}
}

func TestFlipRadiusRejectsTooManyCorners(t *testing.T) {
	t.Parallel()

	_, err := FlipRadius(MustParseRadius("1px 2px 3px 4px 5px"))
	require.ErrorIs(t, err, shapeerrors.ErrShapeLength)

	var validationErr *shapeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestResolvePercentageRadius(t *testing.T) {
	t.Parallel()

	unitless := css.Dimension{Quantity: 36}
	out, err := ResolvePercentageRadius(unitless, MustParseRadius("50%"))
	require.NoError(t, err)
	require.Equal(t, "18", out.String())
	require.False(t, out.IsList())

	height := css.Dimension{Quantity: 36, Unit: "px"}
	out, err = ResolvePercentageRadius(height, MustParseRadius("50% 4px 25% small"))
	require.NoError(t, err)
	require.Equal(t, "18px 4px 9px small", out.String())
	require.True(t, out.IsList())
}

func TestResolvePercentageRadiusLeavesOtherValues(t *testing.T) {
	t.Parallel()

	for _, height := range []css.Dimension{{Quantity: 0}, {Quantity: 48, Unit: "px"}, {Quantity: 2.5, Unit: "rem"}} {
		for _, input := range []string{"8px", "var(--x)", "large", "0"} {
			r := MustParseRadius(input)
			out, err := ResolvePercentageRadius(height, r)
			require.NoError(t, err)
			require.True(t, out.Equal(r))
		}
	}
}

func TestResolvePercentageRadiusValidation(t *testing.T) {
	t.Parallel()

	_, err := ResolvePercentageRadius(css.Dimension{Quantity: 50, Unit: "%"}, MustParseRadius("50%"))
	require.Error(t, err)

	_, err = ResolvePercentageRadius(css.Dimension{Quantity: 10}, MustParseRadius("1% 1% 1% 1% 1%"))
	require.ErrorIs(t, err, shapeerrors.ErrShapeLength)
}

func TestMaskRadius(t *testing.T) {
	t.Parallel()

	cases := []struct {
		radius string
		mask   Mask
		want   string
	}{
		{radius: "2px 3px", mask: Mask{1, 1, 0, 0}, want: "2px 3px 0 0"},
		{radius: "8px", mask: Mask{0, 0, 1, 1}, want: "0 0 8px 8px"},
		{radius: "4px 4px 4px 4px", mask: Mask{0, 1, 1, 0}, want: "0 4px 4px 0"},
		{radius: "1px 2px 3px", mask: MaskAll, want: "1px 2px 3px 2px"},
		{radius: "small", mask: MaskStart, want: "small 0 0 small"},
	}

	for _, tc := range cases {
		out, err := MaskRadius(MustParseRadius(tc.radius), tc.mask)
		require.NoError(t, err)
		require.True(t, out.IsList())
		require.Equal(t, MaxCorners, out.Len())
		require.Equal(t, tc.want, out.String(), "mask %v over %q", tc.mask, tc.radius)
	}
}

func TestMaskRadiusValidation(t *testing.T) {
	t.Parallel()

	_, err := MaskRadius(MustParseRadius("1px 2px 3px 4px 5px"), MaskAll)
	require.ErrorIs(t, err, shapeerrors.ErrShapeLength)

	_, err = MaskRadius(MustParseRadius("4px"), Mask{1, 1, 0})
	require.ErrorIs(t, err, shapeerrors.ErrMaskLength)

	_, err = MaskRadius(MustParseRadius("4px"), Mask{1, 2, 0, 0})
	require.Error(t, err)
	require.NotErrorIs(t, err, shapeerrors.ErrMaskLength)
}

func TestParseMask(t *testing.T) {
	t.Parallel()

	mask, err := ParseMask("1, 1 0,0")
	require.NoError(t, err)
	require.Equal(t, MaskTop, mask)
	require.Equal(t, "1 1 0 0", mask.String())

	_, err = ParseMask("1 1 0")
	require.ErrorIs(t, err, shapeerrors.ErrMaskLength)

	_, err = ParseMask("1 yes 0 0")
	require.Error(t, err)
}
