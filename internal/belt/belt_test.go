package belt

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 6, r.Len())

	var colors []string
	for _, b := range r.All() {
		colors = append(colors, b.Color)
	}
	assert.Equal(t, []string{"Branca", "Amarela", "Verde", "Azul", "Vermelha", "Preta"}, colors)
}

func TestGet(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	b, err := r.Get("  branca ")
	require.NoError(t, err)
	assert.Equal(t, "Branca", b.Color)
	assert.Equal(t, "10 GUB", b.Grade)
	assert.Equal(t, "Branca (10 GUB)", b.String())
	assert.Equal(t, []string{
		"Apgubi Momtong Jireugi",
		"Juchum Seogi Momtong Jireugi",
		"Arae Makgi",
		"Eolgul Makgi",
		"Ap Chagi",
		"Dollyeo Chagi",
	}, b.Techniques())

	_, err = r.Get("Roxa")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"Roxa"`)
}

func TestRank(t *testing.T) {
	tests := []struct {
		grade string
		want  int
	}{
		{"10 GUB", 10},
		{"1 gub", 1},
		{"1 DAN", -1},
		{"3 DAN", -3},
		{"", 0},
		{"GUB", 0},
		{"x GUB", 0},
		{"2 PUM", 0},
	}
	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.want, Belt{Grade: tt.grade}.Rank())
		})
	}
}

func TestAllOrdersDansAfterGubs(t *testing.T) {
	r, err := NewRegistry(
		Belt{Color: "C", Grade: "2 DAN"},
		Belt{Color: "B", Grade: "1 GUB"},
		Belt{Color: "A", Grade: "1 DAN"},
		Belt{Color: "D", Grade: "9 GUB"},
	)
	require.NoError(t, err)

	var colors []string
	for _, b := range r.All() {
		colors = append(colors, b.Color)
	}
	assert.Equal(t, []string{"D", "B", "A", "C"}, colors)
}

func TestNewRegistryRejectsDuplicateColor(t *testing.T) {
	_, err := NewRegistry(Belt{Color: "Azul"}, Belt{Color: "AZUL"})
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	b, err := Parse([]byte(`{"color": " Roxa ", "grade": "3 GUB", "hand_techniques": ["Jireugi"], "kick_techniques": []}`))
	require.NoError(t, err)
	assert.Equal(t, "Roxa", b.Color)
	assert.Equal(t, []string{"Jireugi"}, b.Techniques())

	_, err = Parse([]byte("grade: 3 GUB\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("color: [unterminated"))
	assert.Error(t, err)
}

func TestLoadPattern(t *testing.T) {
	fsys := fstest.MapFS{
		"faixa_a.yaml":  {Data: []byte("color: A\ngrade: 5 GUB\n")},
		"faixa_b.json":  {Data: []byte(`{"color": "B", "grade": "4 GUB"}`)},
		"faixa_c.yml":   {Data: []byte("color: C\ngrade: 3 GUB\n")},
		"notes.txt":     {Data: []byte("not a belt")},
		"faixa_d.toml":  {Data: []byte("color = 'D'")},
		"sub/faixa.yml": {Data: []byte("color: E\n")},
	}

	r, err := Load(fsys, "")
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	r, err = Load(fsys, "**/*.yml")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	_, err = r.Get("E")
	assert.NoError(t, err)
}

func TestLoadReportsBadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"faixa_bad.yaml": {Data: []byte("grade: 1 GUB\n")},
	}
	_, err := Load(fsys, DefaultPattern)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faixa_bad.yaml")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "faixa_roxa.yaml"),
		[]byte("color: Roxa\ngrade: 3 GUB\nhand_techniques: [Jireugi]\n"), 0644))

	r, err := Open(dir, DefaultPattern)
	require.NoError(t, err)
	b, err := r.Get("roxa")
	require.NoError(t, err)
	assert.Equal(t, "3 GUB", b.Grade)

	_, err = LoadDir(filepath.Join(dir, "missing"), DefaultPattern)
	assert.Error(t, err)

	_, err = LoadDir(filepath.Join(dir, "faixa_roxa.yaml"), DefaultPattern)
	assert.Error(t, err)
}
