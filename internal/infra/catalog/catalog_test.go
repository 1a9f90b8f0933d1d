package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"khitma/internal/domain/entity"
	"khitma/internal/errors"
	mockRepo "khitma/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const validCatalog = `[
  {"surah_name": "Al-Baqarah", "surah_name_ar": "البقرة", "surah_number": 2, "ayah_number": 286,
   "arabic_text": "لَا يُكَلِّفُ اللَّهُ نَفْسًا إِلَّا وُسْعَهَا", "translation": "Allah does not burden a soul beyond that it can bear."},
  {"surah_name": "Ash-Sharh", "surah_number": 94, "ayah_number": 6,
   "arabic_text": "إِنَّ مَعَ الْعُسْرِ يُسْرًا", "translation": "Indeed, with hardship comes ease.", "is_active": false}
]`

func loadString(t *testing.T, body string) (*Catalog, error) {
	t.Helper()

	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(ctx, "verses.json", []byte(body), nil))

	return LoadFromBucket(ctx, bucket, "verses.json")
}

func writeCatalogDir(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verses.json"), []byte(body), 0o600))

	return "file://" + filepath.ToSlash(dir)
}

func TestLoadFromBucket(t *testing.T) {
	catalog, err := loadString(t, validCatalog)
	require.NoError(t, err)

	require.Len(t, catalog.Verses, 2)
	assert.Equal(t, 2, catalog.Verses[0].SurahNumber)
	assert.Equal(t, 286, catalog.Verses[0].AyahNumber)
	assert.True(t, catalog.Verses[0].IsActive, "is_active defaults to true")
	assert.False(t, catalog.Verses[1].IsActive)
	assert.Len(t, catalog.Checksum, 64)
	assert.Equal(t, int64(len(validCatalog)), catalog.Size)
}

func TestLoadFromBucket_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "not json", body: "{", message: "decode verses.json"},
		{name: "empty", body: "[]", message: "catalog is empty"},
		{
			name:    "surah out of range",
			body:    `[{"surah_name":"X","surah_number":115,"ayah_number":1,"arabic_text":"x"}]`,
			message: "surah_number 115 out of range",
		},
		{
			name:    "missing text",
			body:    `[{"surah_name":"X","surah_number":1,"ayah_number":1,"arabic_text":"  "}]`,
			message: "arabic_text is required",
		},
		{
			name: "duplicate reference",
			body: `[{"surah_name":"X","surah_number":1,"ayah_number":1,"arabic_text":"a"},
				{"surah_name":"X","surah_number":1,"ayah_number":1,"arabic_text":"b"}]`,
			message: "duplicate verse 1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadString(t, tt.body)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MissingKey(t *testing.T) {
	_, err := Load(context.Background(), writeCatalogDir(t, validCatalog), "missing.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog missing.json")
}

func TestImporter_Import(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := writeCatalogDir(t, validCatalog)

	t.Run("upserts the catalog", func(t *testing.T) {
		verseRepo := mockRepo.NewMockVerseRepository(t)
		verseRepo.EXPECT().
			UpsertVerses(mock.Anything, mock.MatchedBy(func(verses []*entity.Verse) bool {
				return len(verses) == 2 && verses[1].SurahNumber == 94
			})).
			Return(int64(2), nil)

		result, err := NewImporter(verseRepo, logger).Import(context.Background(), source, "verses.json", false)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Verses)
		assert.Equal(t, int64(2), result.Written)
		assert.Len(t, result.Checksum, 64)
	})

	t.Run("dry run only validates", func(t *testing.T) {
		verseRepo := mockRepo.NewMockVerseRepository(t)

		result, err := NewImporter(verseRepo, logger).Import(context.Background(), source, "verses.json", true)
		require.NoError(t, err)
		assert.Zero(t, result.Written)
	})

	t.Run("repository failure", func(t *testing.T) {
		verseRepo := mockRepo.NewMockVerseRepository(t)
		verseRepo.EXPECT().UpsertVerses(mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

		_, err := NewImporter(verseRepo, logger).Import(context.Background(), source, "verses.json", false)
		assert.ErrorContains(t, err, "failed to upsert verses")
	})
}
