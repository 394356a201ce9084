package atomic

import (
	"strings"
	"sync"
	"testing"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/stretchr/testify/require"
)

func TestHashIsStable(t *testing.T) {
	t.Parallel()

	a := substyle.Tree{{Key: "width", Value: 50}}
	b := substyle.Tree{{Key: "width", Value: 50}}

	require.Equal(t, Hash(a), Hash(b))
	require.Len(t, Hash(a), hashLength)
	require.NotEqual(t, Hash(a), Hash(substyle.Tree{{Key: "width", Value: 51}}))
}

func TestHashOpaqueValues(t *testing.T) {
	t.Parallel()

	style := substyle.Tree{{Key: "fn", Value: make(chan int)}}

	require.Len(t, Hash(style), hashLength)
}

func TestSheetAddsRuleOnce(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("")
	style := substyle.Tree{{Key: "backgroundColor", Value: "red"}}

	first := sheet.AddClass(style)
	second := sheet.AddClass(substyle.Tree{{Key: "backgroundColor", Value: "red"}})

	require.Equal(t, first, second)
	require.True(t, strings.HasPrefix(first, "css-"))
	require.Equal(t, 1, sheet.Len())
}

func TestSheetPrependsRules(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("x")
	first := sheet.AddClass(substyle.Tree{{Key: "color", Value: "red"}})
	second := sheet.AddClass(substyle.Tree{{Key: "color", Value: "blue"}})

	rules := sheet.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, "."+second, rules[0].Selector)
	require.Equal(t, "."+first, rules[1].Selector)
	require.Equal(t, "x", sheet.Prefix())
}

func TestSheetReset(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("")
	sheet.AddClass(substyle.Tree{{Key: "color", Value: "red"}})
	sheet.Reset()

	require.Zero(t, sheet.Len())
	require.Empty(t, sheet.CSS())
}

func TestSheetConcurrentAdds(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sheet.AddClass(substyle.Tree{{Key: "zIndex", Value: i % 4}})
		}(i)
	}
	wg.Wait()

	require.Equal(t, 4, sheet.Len())
}

func TestSheetCreate(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("")
	r := sheet.Create(substyle.Tree{
		{Key: "color", Value: "red"},
		{Key: "label", Value: substyle.Tree{{Key: "fontWeight", Value: 700}}},
	})

	require.False(t, r.HasStyle())
	require.NotEmpty(t, r.ClassName())

	label := r.MustSelect("label")
	require.NotEqual(t, r.ClassName(), label.ClassName())
	require.Equal(t, 2, sheet.Len())
	require.Contains(t, sheet.CSS(), "font-weight: 700;")
}
