package service

import (
	"errors"
	"testing"

	"github.com/gbabichev/Simple-Renamer/internal/adapter/regex"
	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

func TestPatternService_MatchItems(t *testing.T) {
	svc := NewPatternService(&regex.Engine{})

	items := []domain.Item{
		{Name: "img1.jpg", Extension: ".jpg"},
		{Name: "img10.jpg", Extension: ".jpg"},
		{Name: "photo.jpg", Extension: ".jpg"},
	}

	t.Run("empty pattern keeps everything", func(t *testing.T) {
		matched, err := svc.MatchItems(items, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matched) != 3 {
			t.Errorf("got %d items, want 3", len(matched))
		}
	})

	t.Run("shortcut pattern narrows the set", func(t *testing.T) {
		matched, err := svc.MatchItems(items, "img[number]")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matched) != 2 {
			t.Fatalf("got %d items, want 2", len(matched))
		}
		if matched[0].Name != "img1.jpg" || matched[1].Name != "img10.jpg" {
			t.Errorf("got %q, %q", matched[0].Name, matched[1].Name)
		}
	})

	t.Run("invalid pattern fails", func(t *testing.T) {
		_, err := svc.MatchItems(items, "(")
		if !errors.Is(err, domain.ErrInvalidPattern) {
			t.Errorf("got err %v, want ErrInvalidPattern", err)
		}
	})
}
