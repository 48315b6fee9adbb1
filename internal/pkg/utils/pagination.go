package utils

import (
	"fmt"
	"net/url"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/fhir_dto"
)

// BuildBundleLinks computes the self/previous/next link set for a paged
// searchset bundle. Optional filters are omitted entirely when absent so
// self links stay canonical and comparable.
func BuildBundleLinks(baseURL string, page, limit, total int, typeFilter, keyword string) []fhir_dto.Link {
	last := (total + limit - 1) / limit

	links := []fhir_dto.Link{
		{Relation: constvars.FhirLinkRelationSelf, Url: buildPageURL(baseURL, page, limit, typeFilter, keyword)},
	}
	if page > 1 {
		links = append(links, fhir_dto.Link{
			Relation: constvars.FhirLinkRelationPrevious,
			Url:      buildPageURL(baseURL, page-1, limit, typeFilter, keyword),
		})
	}
	if page < last {
		links = append(links, fhir_dto.Link{
			Relation: constvars.FhirLinkRelationNext,
			Url:      buildPageURL(baseURL, page+1, limit, typeFilter, keyword),
		})
	}
	return links
}

func buildPageURL(baseURL string, page, limit int, typeFilter, keyword string) string {
	params := url.Values{}
	params.Set(constvars.QueryParamPage, fmt.Sprintf("%d", page))
	params.Set(constvars.QueryParamLimit, fmt.Sprintf("%d", limit))
	if typeFilter != "" {
		params.Set(constvars.QueryParamType, typeFilter)
	}
	if keyword != "" {
		params.Set(constvars.QueryParamKeyword, keyword)
	}
	return baseURL + "?" + params.Encode()
}
