package markup

import (
	"fmt"

	"github.com/example/imgmap/internal/media"
)

// FaviconLink renders the <link> snippet that references the image as a site
// icon. The snippet is plain HTML regardless of the selected framework.
func FaviconLink(img media.Descriptor) string {
	return fmt.Sprintf("<link rel=\"icon\" type=%q href=%q>", img.Format.MIME(), "./"+img.FileName)
}
