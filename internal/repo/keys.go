package repo

import "fmt"

// Object key prefixes group blobs by content class. Cache headers for
// served objects are chosen by prefix.
const (
	PrefixUploads   = "uploads/"
	PrefixGenerated = "generated/"
	PrefixTemplates = "templates/"
	PrefixFonts     = "fonts/"
)

// UploadKey builds the storage key for one variant of an uploaded image.
// imageID already carries the owner segment ("<userID>/<timestamp>").
func UploadKey(imageID, variant, ext string) string {
	return fmt.Sprintf("%s%s_%s.%s", PrefixUploads, imageID, variant, ext)
}

// GeneratedKey builds the storage key for one output variant of a
// generated quote image.
func GeneratedKey(generationID, formatKey, ext string) string {
	return fmt.Sprintf("%s%s_%s.%s", PrefixGenerated, generationID, formatKey, ext)
}
