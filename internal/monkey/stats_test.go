package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(list []Species) []string {
	out := make([]string, len(list))
	for i, sp := range list {
		out[i] = sp.Name
	}
	return out
}

func TestStats_Builtin(t *testing.T) {
	c := newTestCatalog(t, BuiltinSource{})
	_, _ = c.PickRandom()
	_, _ = c.PickRandom()

	st := c.Stats(3)

	assert.Equal(t, 8, st.Species)
	assert.Equal(t, int64(2), st.Picks)
	assert.Equal(t, TotalPopulation(c.All()), st.TotalPopulation)
	assert.Equal(t, int64(2129000), st.TotalPopulation)
	assert.Equal(t, []string{"Mandrill", "Squirrel Monkey", "Capuchin Monkey"}, names(st.Top))
}

func TestTopByPopulation(t *testing.T) {
	tests := []struct {
		name string
		list []Species
		n    int
		want []string
	}{
		{
			name: "descending",
			list: []Species{{Name: "a", Population: 1}, {Name: "b", Population: 3}, {Name: "c", Population: 2}},
			n:    3,
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties keep list order",
			list: []Species{{Name: "a", Population: 5}, {Name: "b", Population: 9}, {Name: "c", Population: 5}, {Name: "d", Population: 5}},
			n:    3,
			want: []string{"b", "a", "c"},
		},
		{
			name: "fewer than n",
			list: []Species{{Name: "a", Population: 1}},
			n:    3,
			want: []string{"a"},
		},
		{
			name: "empty",
			list: nil,
			n:    3,
			want: []string{},
		},
		{
			name: "negative n",
			list: []Species{{Name: "a", Population: 1}},
			n:    -1,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(TopByPopulation(tt.list, tt.n)))
		})
	}
}

func TestTopByPopulation_DoesNotReorderInput(t *testing.T) {
	list := []Species{{Name: "a", Population: 1}, {Name: "b", Population: 2}}
	_ = TopByPopulation(list, 2)
	assert.Equal(t, []string{"a", "b"}, names(list))
}
