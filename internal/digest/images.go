package digest

import (
	"fmt"

	"marketbrief/pkg/search"
)

const placeholderURL = "https://via.placeholder.com/800x400.png?text=Financial+Chart+%d"

// SelectImages walks the items in order collecting non-empty image URLs, then
// pads with numbered placeholders. The result always has exactly maxImages
// entries, real URLs first.
func SelectImages(items []search.Item, maxImages int) []string {
	if maxImages <= 0 {
		return nil
	}

	images := make([]string, 0, maxImages)
	for _, item := range items {
		if len(images) >= maxImages {
			break
		}
		if item.Image != "" {
			images = append(images, item.Image)
		}
	}

	for len(images) < maxImages {
		images = append(images, fmt.Sprintf(placeholderURL, len(images)+1))
	}

	return images
}
