package services

import (
	"github.com/google/uuid"

	"github.com/tolarian-archive/scryglass/internal/core/domain"
)

// Scryfall's PNG renders have a 3:4.18 aspect ratio; these are the
// dimensions Telegram is told to expect.
const (
	cardPhotoWidth  = 672
	cardPhotoHeight = 936
)

// PhotosFromCard builds one inline photo result per card face, so
// double-faced cards show both sides. Faces without images are skipped.
// Each result carries a single button with the card's name linking to
// its Scryfall page.
func PhotosFromCard(card domain.Card) []domain.InlinePhoto {
	faces := card.Faces()
	photos := make([]domain.InlinePhoto, 0, len(faces))

	for _, face := range faces {
		if face.ImageURIs == nil {
			continue
		}

		photos = append(photos, domain.InlinePhoto{
			Type:        "photo",
			ID:          uuid.NewString(),
			PhotoURL:    face.ImageURIs.PNG,
			ThumbURL:    face.ImageURIs.Small,
			PhotoWidth:  cardPhotoWidth,
			PhotoHeight: cardPhotoHeight,
			ReplyMarkup: &domain.InlineKeyboardMarkup{
				InlineKeyboard: [][]domain.InlineKeyboardButton{{
					{Text: card.Name, URL: card.ScryfallURI},
				}},
			},
		})
	}

	return photos
}
