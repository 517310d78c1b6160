package stub

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
)

const uploadBaseURL = "https://cdn.sportmart.local"

// UploadImage handles POST /api/v1/upload. The stub never stores bytes; it
// validates the part and fabricates a CDN-style URL.
func (s *Store) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	if folder == "" {
		folder = "misc"
	}

	publicID := folder + "/" + uuid.New().String()
	respond(c, http.StatusOK, entities.UploadResult{
		URL:      uploadBaseURL + "/" + publicID + filepath.Ext(header.Filename),
		PublicID: publicID,
	})
}
