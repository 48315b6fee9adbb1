package utils

import (
	"net/http"
	"strconv"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.QueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	limit, err := strconv.Atoi(query.Get(constvars.QueryParamLimit))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultLimit
	}

	return &requests.Pagination{
		Page:    page,
		Limit:   limit,
		Type:    query.Get(constvars.QueryParamType),
		Keyword: query.Get(constvars.QueryParamKeyword),
	}
}
