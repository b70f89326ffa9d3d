package i18n_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytreport/internal/application"
	"ytreport/internal/domain"
	"ytreport/internal/domain/entities"
	"ytreport/internal/infrastructure/i18n"
)

func TestDecodeFragment(t *testing.T) {
	tests := []struct {
		name string
		id   string
		data string
		want map[string]entities.Dictionary
	}{
		{
			name: "toml grouped",
			id:   "report_en.toml",
			data: "[labels]\n\"a.b\" = \"x\"\n[labels.nested]\nc = \"y\"\n",
			want: map[string]entities.Dictionary{"labels": {"a.b": "x", "nested.c": "y"}},
		},
		{
			name: "yaml flat",
			id:   "report_en.yml",
			data: "greeting: hi\ncount: 3\n",
			want: map[string]entities.Dictionary{"": {"greeting": "hi", "count": "3"}},
		},
		{
			name: "json mixed",
			id:   "app.json_de",
			data: `{"top": "oben", "menu": {"open": "Öffnen"}}`,
			want: map[string]entities.Dictionary{"": {"top": "oben"}, "menu": {"open": "Öffnen"}},
		},
		{
			name: "yaml non-string keys",
			id:   "status_en.yaml",
			data: "http:\n  404: Not found\n  500: Server error\n",
			want: map[string]entities.Dictionary{"http": {"404": "Not found", "500": "Server error"}},
		},
		{
			name: "yaml nested non-string keys",
			id:   "status_en.yaml",
			data: "errors:\n  http:\n    404: Not found\n    true: yes\n",
			want: map[string]entities.Dictionary{"errors": {"http.404": "Not found", "http.true": "yes"}},
		},
		{
			name: "po with locale suffix",
			id:   "app.po_fr",
			data: "msgid \"greeting\"\nmsgstr \"salut\"\n",
			want: map[string]entities.Dictionary{"": {"greeting": "salut"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := i18n.DecodeFragment(tt.id, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFragment_Errors(t *testing.T) {
	_, err := i18n.DecodeFragment("notes_en.txt", []byte("hi"))
	require.ErrorIs(t, err, domain.ErrUnsupportedFragment)

	_, err = i18n.DecodeFragment("bad_en.json", []byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_en.json")
}

func TestDecodeFragment_RejectsNonScalars(t *testing.T) {
	tests := []struct {
		name string
		id   string
		data string
		key  string
	}{
		{
			name: "top-level list",
			id:   "status_en.yaml",
			data: "http:\n  404: Not found\n  500: Server error\nlist: [a, b]",
			key:  `"list"`,
		},
		{
			name: "nested list",
			id:   "menu_en.json",
			data: `{"menu": {"items": ["open", "close"]}}`,
			key:  `"items"`,
		},
		{
			name: "toml array",
			id:   "menu_en.toml",
			data: "[menu]\nitems = [\"open\"]\n",
			key:  `"items"`,
		},
		{
			name: "null value",
			id:   "menu_en.yaml",
			data: "menu:\n  open: ~\n",
			key:  `"open"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := i18n.DecodeFragment(tt.id, []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.id)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"b_en.po":     {Data: []byte("msgid \"greeting\"\nmsgstr \"hello\"\n")},
		"a_en.po":     {Data: []byte("msgid \"greeting\"\nmsgstr \"hi\"\n\nmsgid \"bye\"\nmsgstr \"bye\"\n")},
		"app.po_fr":   {Data: []byte("msgid \"greeting\"\nmsgstr \"salut\"\n")},
		"README.md":   {Data: []byte("not a fragment")},
		"sub/x_de.po": {Data: []byte("msgid \"greeting\"\nmsgstr \"hallo\"\n")},
	}

	src, err := i18n.NewFSSource(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_en.po", "app.po_fr", "b_en.po"}, src.Keys())

	bundles, err := application.BuildBundlesFrom(src)
	require.NoError(t, err)
	assert.Equal(t, entities.Bundles{
		"en": {"greeting": "hello", "bye": "bye"},
		"fr": {"greeting": "salut"},
	}, bundles)
}

func TestFSSource_KeysAreCopied(t *testing.T) {
	src, err := i18n.NewFSSource(fstest.MapFS{"a_en.po": {Data: nil}})
	require.NoError(t, err)
	keys := src.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a_en.po"}, src.Keys())
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget_en.po"), []byte("msgid \"greeting\"\nmsgstr \"hi\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "labels_en.toml"), []byte("[labels]\nbye = \"bye\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget_ru.yaml"), []byte("greeting: привет\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	src, err := i18n.DirSource(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"labels_en.toml", "widget_en.po", "widget_ru.yaml"}, src.Keys())

	bundles, err := application.BuildBundlesFrom(src)
	require.NoError(t, err)
	assert.Equal(t, entities.Bundles{
		"en": {"greeting": "hi", "bye": "bye"},
		"ru": {"greeting": "привет"},
	}, bundles)
}

func TestDirSource_Missing(t *testing.T) {
	_, err := i18n.DirSource(t.TempDir() + "/missing")
	require.Error(t, err)
}

func TestEmbeddedSource(t *testing.T) {
	src, err := i18n.EmbeddedSource()
	require.NoError(t, err)
	require.NotEmpty(t, src.Keys())

	bundles, err := application.BuildBundlesFrom(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ru"}, bundles.Locales())

	// every English key has a Russian counterpart
	for key := range bundles["en"] {
		assert.Contains(t, bundles["ru"], key)
	}
	assert.Equal(t, "Issue report", bundles["en"]["widget.title"])
	assert.Equal(t, "По состоянию", bundles["ru"]["report.by_state"])
}
