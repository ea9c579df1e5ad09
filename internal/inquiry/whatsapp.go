package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	"gallery-app/internal/domain/catalog"
)

// DefaultMessage is the greeting used when no painting is selected.
const DefaultMessage = "Hello! I'm interested in one of your paintings."

// LinkBuilder builds wa.me deep links that open a chat with the gallery,
// pre-filled with an inquiry message.
type LinkBuilder struct {
	// Number is the recipient in international format without the plus sign.
	Number string
	// FormatPrice renders the amount in the inquiry text.
	FormatPrice func(amount float64) string
}

// GeneralLink is the floating contact button's target.
func (b LinkBuilder) GeneralLink() string {
	return b.link(DefaultMessage)
}

// PaintingLink pre-fills an inquiry referencing title, artist and price.
func (b LinkBuilder) PaintingLink(p catalog.Painting) string {
	msg := fmt.Sprintf(
		"Hello! I'm interested in the painting %q by %s priced at %s. Is it still available?",
		p.Title, p.Artist, b.FormatPrice(p.Price),
	)
	return b.link(msg)
}

func (b LinkBuilder) link(message string) string {
	// %20 instead of '+': wa.me shows '+' literally in the chat box
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + b.Number + "?text=" + encoded
}
