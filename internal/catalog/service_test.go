// AngelaMos | 2026
// service_test.go

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Monstera Deliciosa", "monstera-deliciosa"},
		{"Tanaman  Indoor!", "tanaman-indoor"},
		{"  Pucuk Merah 60cm ", "pucuk-merah-60cm"},
		{"---", ""},
		{"UPPER", "upper"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestListParams_Normalize(t *testing.T) {
	p := ListParams{Page: 0, PageSize: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = ListParams{Page: 3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
}
