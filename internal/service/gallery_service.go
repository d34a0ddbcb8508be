package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zenlog/internal/store"
)

var (
	ErrMediaNotFound    = errors.New("media item not found")
	ErrMediaURLMissing  = errors.New("media url is required")
	ErrMediaTypeInvalid = errors.New("media type is invalid")
)

// MediaInput represents fields accepted when creating or updating a gallery item.
type MediaInput struct {
	Type        string
	URL         string
	Thumbnail   string
	Title       string
	Date        string
	Description string
}

// GalleryService handles gallery CRUD on top of the content store.
type GalleryService struct {
	store *store.ContentStore
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(cs *store.ContentStore) *GalleryService {
	return &GalleryService{store: cs}
}

// List 返回作品集条目，可按类型过滤（all/image/video）。过滤是纯视图变换。
func (s *GalleryService) List(mediaType string) []store.MediaItem {
	items := s.store.ListGallery()

	filter := strings.ToLower(strings.TrimSpace(mediaType))
	if filter == "" || filter == "all" {
		return items
	}

	matched := make([]store.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Type == filter {
			matched = append(matched, item)
		}
	}
	return matched
}

// Get fetches a gallery item by id.
func (s *GalleryService) Get(id string) (store.MediaItem, error) {
	for _, item := range s.store.ListGallery() {
		if item.ID == id {
			return item, nil
		}
	}
	return store.MediaItem{}, ErrMediaNotFound
}

// Create inserts a new gallery item at the front of the collection.
func (s *GalleryService) Create(input MediaInput) (store.MediaItem, error) {
	mediaType, err := normalizeMediaType(input.Type)
	if err != nil {
		return store.MediaItem{}, err
	}
	if strings.TrimSpace(input.URL) == "" {
		return store.MediaItem{}, ErrMediaURLMissing
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().Format(displayDateLayout)
	}

	item := store.MediaItem{
		ID:          uuid.NewString(),
		Type:        mediaType,
		URL:         strings.TrimSpace(input.URL),
		Thumbnail:   strings.TrimSpace(input.Thumbnail),
		Title:       strings.TrimSpace(input.Title),
		Date:        date,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.store.SaveMedia(item); err != nil {
		return store.MediaItem{}, err
	}
	return item, nil
}

// Update modifies an existing gallery item in place, preserving id and date.
func (s *GalleryService) Update(id string, input MediaInput) (store.MediaItem, error) {
	existing, err := s.Get(id)
	if err != nil {
		return store.MediaItem{}, err
	}

	mediaType, err := normalizeMediaType(input.Type)
	if err != nil {
		return store.MediaItem{}, err
	}
	if strings.TrimSpace(input.URL) == "" {
		return store.MediaItem{}, ErrMediaURLMissing
	}

	existing.Type = mediaType
	existing.URL = strings.TrimSpace(input.URL)
	existing.Thumbnail = strings.TrimSpace(input.Thumbnail)
	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = strings.TrimSpace(input.Description)
	if date := strings.TrimSpace(input.Date); date != "" {
		existing.Date = date
	}

	if err := s.store.SaveMedia(existing); err != nil {
		return store.MediaItem{}, err
	}
	return existing, nil
}

// Delete removes a gallery item by id.
func (s *GalleryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.store.DeleteMedia(id)
}

func normalizeMediaType(mediaType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(mediaType))
	switch normalized {
	case "":
		return store.MediaTypeImage, nil
	case store.MediaTypeImage, store.MediaTypeVideo:
		return normalized, nil
	default:
		return "", ErrMediaTypeInvalid
	}
}
