package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lettaaaaa/uklon-service/internal/repository"
)

const defaultPageLimit = 10

// pageFromQuery reads skip/limit query parameters, normalizing negative skip
// and non-positive limit to the defaults.
func pageFromQuery(c *gin.Context) repository.Page {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	return repository.Page{Skip: skip, Limit: limit}
}

// idParam parses the :id path parameter as an int64 surrogate key.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
