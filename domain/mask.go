package domain

import "time"

// Placeholders shown in place of soft-deleted content. The originals are
// kept verbatim so existing clients keep rendering them.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// MaskDeleted returns the placeholder when deletedAt is set and the content
// unchanged otherwise. Masking happens at read time only; rows keep their
// original content.
func MaskDeleted(content string, deletedAt *time.Time, placeholder string) string {
	if deletedAt != nil {
		return placeholder
	}
	return content
}
