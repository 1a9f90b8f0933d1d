// Package catalog imports the motivational verse catalog from blob storage.
// Supported bucket URLs are file:// and gs:// (mem:// in tests).
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"khitma/internal/domain/entity"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/util"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const (
	surahCount      = 114
	maxCatalogBytes = 32 << 20
)

// ErrInvalidCatalog is returned when the catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid verse catalog")

// Entry is one verse in the catalog document.
type Entry struct {
	SurahName   string `json:"surah_name"`
	SurahNameAr string `json:"surah_name_ar"`
	SurahNumber int    `json:"surah_number"`
	AyahNumber  int    `json:"ayah_number"`
	ArabicText  string `json:"arabic_text"`
	Translation string `json:"translation"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// Catalog is a decoded, validated catalog document.
type Catalog struct {
	Verses   []*entity.Verse
	Checksum string
	Size     int64
}

// ImportResult summarizes one import.
type ImportResult struct {
	Source   string `json:"source"`
	Key      string `json:"key"`
	Verses   int    `json:"verses"`
	Written  int64  `json:"written"`
	Checksum string `json:"checksum"`
	Size     string `json:"size"`
}

// Load reads key from the bucket at bucketURL.
func Load(ctx context.Context, bucketURL, key string) (*Catalog, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	defer bucket.Close()

	return LoadFromBucket(ctx, bucket, key)
}

// LoadFromBucket reads and validates the catalog stored under key.
func LoadFromBucket(ctx context.Context, bucket *blob.Bucket, key string) (*Catalog, error) {
	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", key)
	}
	defer reader.Close()

	if reader.Size() > maxCatalogBytes {
		return nil, errors.Wrapf(ErrInvalidCatalog, "catalog is %s", util.FormatBytes(reader.Size()))
	}

	checksum := util.NewChecksumReader(reader)

	var entries []Entry
	if err := json.NewDecoder(checksum).Decode(&entries); err != nil {
		return nil, errors.Wrapf(ErrInvalidCatalog, "decode %s: %v", key, err)
	}

	verses, err := toVerses(entries)
	if err != nil {
		return nil, err
	}

	return &Catalog{Verses: verses, Checksum: checksum.Sum(), Size: checksum.Size()}, nil
}

func toVerses(entries []Entry) ([]*entity.Verse, error) {
	if len(entries) == 0 {
		return nil, errors.Wrap(ErrInvalidCatalog, "catalog is empty")
	}

	seen := make(map[[2]int]struct{}, len(entries))
	verses := make([]*entity.Verse, 0, len(entries))
	for i, entry := range entries {
		if err := entry.validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidCatalog, "entry %d: %v", i, err)
		}

		ref := [2]int{entry.SurahNumber, entry.AyahNumber}
		if _, dup := seen[ref]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "entry %d: duplicate verse %d:%d", i, ref[0], ref[1])
		}
		seen[ref] = struct{}{}

		active := true
		if entry.IsActive != nil {
			active = *entry.IsActive
		}

		verses = append(verses, &entity.Verse{
			SurahName:   strings.TrimSpace(entry.SurahName),
			SurahNameAr: strings.TrimSpace(entry.SurahNameAr),
			SurahNumber: entry.SurahNumber,
			AyahNumber:  entry.AyahNumber,
			ArabicText:  strings.TrimSpace(entry.ArabicText),
			Translation: strings.TrimSpace(entry.Translation),
			IsActive:    active,
		})
	}

	return verses, nil
}

func (e Entry) validate() error {
	switch {
	case e.SurahNumber < 1 || e.SurahNumber > surahCount:
		return errors.Errorf("surah_number %d out of range", e.SurahNumber)
	case e.AyahNumber < 1:
		return errors.Errorf("ayah_number %d out of range", e.AyahNumber)
	case strings.TrimSpace(e.SurahName) == "":
		return errors.New("surah_name is required")
	case strings.TrimSpace(e.ArabicText) == "":
		return errors.New("arabic_text is required")
	}

	return nil
}

// Importer upserts a catalog into the verse repository.
type Importer struct {
	verseRepo repository.VerseRepository
	logger    *slog.Logger
}

// NewImporter creates a catalog importer.
func NewImporter(verseRepo repository.VerseRepository, logger *slog.Logger) *Importer {
	return &Importer{verseRepo: verseRepo, logger: logger}
}

// Import loads the catalog and upserts it. With dryRun the catalog is only validated.
func (i *Importer) Import(ctx context.Context, bucketURL, key string, dryRun bool) (*ImportResult, error) {
	catalog, err := Load(ctx, bucketURL, key)
	if err != nil {
		return nil, err
	}

	return i.write(ctx, catalog, bucketURL, key, dryRun)
}

func (i *Importer) write(ctx context.Context, catalog *Catalog, source, key string, dryRun bool) (*ImportResult, error) {
	result := &ImportResult{
		Source:   source,
		Key:      key,
		Verses:   len(catalog.Verses),
		Checksum: catalog.Checksum,
		Size:     util.FormatBytes(catalog.Size),
	}

	if !dryRun {
		written, err := i.verseRepo.UpsertVerses(ctx, catalog.Verses)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upsert verses")
		}
		result.Written = written
	}

	i.logger.InfoContext(ctx, "[Catalog] verse catalog imported",
		slog.String("source", source),
		slog.String("key", key),
		slog.Int("verses", result.Verses),
		slog.Int64("written", result.Written),
		slog.String("checksum", result.Checksum),
		slog.Bool("dry_run", dryRun),
	)

	return result, nil
}
