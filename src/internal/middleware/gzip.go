package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
)

// DecompressRequest transparently inflates gzip-encoded request bodies so
// handlers always see plain JSON. Mobile clients compress large sensor
// batches before upload.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := c.GetHeader("Content-Encoding")
		if !strings.EqualFold(encoding, "gzip") {
			c.Next()
			return
		}

		if c.Request.Body == nil {
			c.Next()
			return
		}

		reader, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			logrus.WithError(err).Warn("Failed to read gzip request body")
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid gzip request body",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Request.Body = reader
		c.Request.Header.Del("Content-Encoding")
		c.Request.Header.Del("Content-Length")
		c.Request.ContentLength = -1

		c.Next()
	}
}
