package domain_test

import (
	"testing"

	"github.com/nikolayk812/bistro-cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomizerDefaults(t *testing.T) {
	burger := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers)).Build()
	assert.Equal(t, domain.DefaultCookLevel, burger.CookLevel())
	assert.Equal(t, domain.DefaultSide, burger.Side())
	assert.Equal(t, domain.NoDrink, burger.Drink())
	assert.True(t, burger.Surcharge().IsZero())

	salad := domain.NewCustomizer(product("Caesar", "9.75", domain.CategorySalads))
	require.NoError(t, salad.SetCookLevel(domain.CookRare))
	assert.Empty(t, salad.Build().CookLevel(), "cook level only applies to burgers")
}

func TestCustomizerExtrasToggle(t *testing.T) {
	z := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers))

	require.NoError(t, z.ToggleExtra("bacon"))
	require.NoError(t, z.ToggleExtra("avocado"))
	assert.Equal(t, "4.5", z.Surcharge().String())

	require.NoError(t, z.ToggleExtra("bacon"))
	assert.Equal(t, "2", z.Surcharge().String())
	assert.Equal(t, []string{"avocado"}, z.Build().Extras())

	require.NoError(t, z.ToggleExtra("avocado"))
	assert.True(t, z.Surcharge().IsZero())
}

func TestCustomizerSideDelta(t *testing.T) {
	sides := domain.Sides()

	for _, withExtras := range []bool{false, true} {
		z := domain.NewCustomizer(product("Deluxe", "14.50", domain.CategoryBurgers))
		if withExtras {
			require.NoError(t, z.ToggleExtra("fried-egg"))
			require.NoError(t, z.ToggleExtra("jalapenos"))
		}

		for _, from := range sides {
			for _, to := range sides {
				require.NoError(t, z.SelectSide(from.ID))
				before := z.Surcharge()

				require.NoError(t, z.SelectSide(to.ID))
				after := z.Surcharge()

				assert.True(t, after.Sub(before).Equal(to.Price.Sub(from.Price)),
					"%s -> %s: %s -> %s", from.ID, to.ID, before, after)
			}
		}
	}
}

func TestCustomizerDrinkDelta(t *testing.T) {
	z := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers))

	require.NoError(t, z.SelectDrink("cola"))
	assert.Equal(t, "2.5", z.Surcharge().String())

	require.NoError(t, z.SelectDrink("lemonade"))
	assert.Equal(t, "3", z.Surcharge().String())

	require.NoError(t, z.SelectDrink(domain.NoDrink))
	assert.True(t, z.Surcharge().IsZero())
}

func TestCustomizerRemovedIngredientsArePriceNeutral(t *testing.T) {
	z := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers))

	require.NoError(t, z.ToggleRemoved("pickles"))
	require.NoError(t, z.ToggleRemoved("onion"))
	require.NoError(t, z.ToggleRemoved("onion"))

	assert.True(t, z.Surcharge().IsZero())
	assert.Equal(t, []string{"pickles"}, z.Build().Removed())
	require.EqualError(t, z.ToggleRemoved("  "), "ingredient is empty")
}

func TestCustomizerUnknownOptions(t *testing.T) {
	z := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers))

	require.ErrorIs(t, z.ToggleExtra("truffle"), domain.ErrUnknownOption)
	require.ErrorIs(t, z.SelectSide("nachos"), domain.ErrUnknownOption)
	require.ErrorIs(t, z.SelectDrink("wine"), domain.ErrUnknownOption)
	require.ErrorIs(t, z.SetCookLevel("blue"), domain.ErrUnknownOption)

	// nothing was applied
	assert.True(t, z.Surcharge().IsZero())
}

func TestBuildIsSnapshot(t *testing.T) {
	z := domain.NewCustomizer(product("Classic", "11.99", domain.CategoryBurgers))
	require.NoError(t, z.ToggleExtra("bacon"))

	built := z.Build()
	require.NoError(t, z.ToggleExtra("mushrooms"))
	require.NoError(t, z.SelectSide("onion-rings"))

	assert.Equal(t, []string{"bacon"}, built.Extras())
	assert.Equal(t, "2.5", built.Surcharge().String())
}

func TestResolve(t *testing.T) {
	deluxe := product("Deluxe", "14.50", domain.CategoryBurgers)

	tests := []struct {
		name          string
		sel           domain.Selection
		wantSurcharge string
		wantDescribe  string
		wantErrIs     error
	}{
		{
			name:          "side switched and one extra",
			sel:           domain.Selection{Side: "onion-rings", Extras: []string{"bacon"}},
			wantSurcharge: "4",
			wantDescribe:  "medium; + Bacon; side: Onion Rings",
		},
		{
			name: "everything",
			sel: domain.Selection{
				CookLevel: domain.CookMediumRare,
				Extras:    []string{"extra-cheese", "extra-cheese", "caramelized-onions"},
				Removed:   []string{"tomato"},
				Side:      "sweet-potato-fries",
				Drink:     "iced-tea",
			},
			wantSurcharge: "5.75",
			wantDescribe:  "medium-rare; + Extra Cheese; + Caramelized Onions; no tomato; side: Sweet Potato Fries; drink: Iced Tea",
		},
		{
			name:          "empty selection",
			sel:           domain.Selection{},
			wantSurcharge: "0",
			wantDescribe:  "medium",
		},
		{
			name:      "unknown side",
			sel:       domain.Selection{Side: "truffle-fries"},
			wantErrIs: domain.ErrUnknownOption,
		},
		{
			name:      "unknown extra",
			sel:       domain.Selection{Extras: []string{"gold-leaf"}},
			wantErrIs: domain.ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cz, err := domain.Resolve(deluxe, tt.sel)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantSurcharge, cz.Surcharge().String())
			assert.Equal(t, tt.wantDescribe, cz.Describe())
		})
	}
}

func TestNewCustomizerFrom(t *testing.T) {
	p := product("Classic", "11.99", domain.CategoryBurgers)

	original, err := domain.Resolve(p, domain.Selection{Extras: []string{"bacon"}, Drink: "cola"})
	require.NoError(t, err)

	z := domain.NewCustomizerFrom(p, original)
	require.NoError(t, z.ToggleExtra("bacon"))

	assert.Equal(t, "2.5", z.Surcharge().String())
	assert.Equal(t, "5", original.Surcharge().String(), "original is untouched")
}

func TestZeroCustomization(t *testing.T) {
	var cz domain.Customization

	assert.True(t, cz.Surcharge().IsZero())
	assert.Empty(t, cz.Describe())
}
