package domain

// ImageURIs holds the rendered image links Scryfall exposes for a card
// or a single card face. Only the sizes the bot sends are mapped.
type ImageURIs struct {
	// Small is a low-resolution JPEG used as the result thumbnail.
	Small string `json:"small"`

	// PNG is the full-resolution transparent render.
	PNG string `json:"png"`
}

// CardFace is one printable face of a card. Transform and modal
// double-faced cards carry their images per face rather than on the
// card object itself.
type CardFace struct {
	Name      string     `json:"name"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// Card is a single card object as returned by the Scryfall search API.
// The bot treats cards as opaque beyond the fields needed to build a
// photo result; everything else in the payload is ignored.
type Card struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ScryfallURI string     `json:"scryfall_uri"`
	ImageURIs   *ImageURIs `json:"image_uris,omitempty"`
	CardFaces   []CardFace `json:"card_faces,omitempty"`
}

// Faces returns the faces of the card that have images. Single-faced
// cards yield one face built from the card's own fields. Cards whose
// faces carry no images of their own (split and adventure layouts) fall
// back to the card-level images.
func (c Card) Faces() []CardFace {
	if len(c.CardFaces) == 0 {
		return []CardFace{{Name: c.Name, ImageURIs: c.ImageURIs}}
	}

	faces := make([]CardFace, 0, len(c.CardFaces))
	for _, face := range c.CardFaces {
		if face.ImageURIs != nil {
			faces = append(faces, face)
		}
	}

	if len(faces) == 0 {
		return []CardFace{{Name: c.Name, ImageURIs: c.ImageURIs}}
	}

	return faces
}
