package scholar

import (
	"net/url"
	"strconv"
)

// Optional parameters follow omit-when-unset semantics: string fields are
// omitted from the outgoing query when empty, pointer fields when nil, and
// slice fields when nil. Supplied values are forwarded verbatim; no
// client-side bounds checking is applied to offset or limit.

// BatchParams holds the parameters for the batch lookup operations.
type BatchParams struct {
	// IDs is the list of paper or author identifiers, sent as the request
	// body's "ids" field. A nil slice omits the field entirely.
	IDs []string

	// Fields is a comma-separated list of fields to include in the response.
	Fields string
}

// PageParams holds pagination and field-selection parameters shared by the
// listing operations (author papers, paper authors/citations/references).
type PageParams struct {
	// Offset is the number of initial items to skip.
	Offset *int

	// Limit is the maximum number of results to return.
	Limit *int

	// Fields is a comma-separated list of fields to include in the response.
	Fields string
}

// AuthorSearchParams holds the parameters for the author search operation.
type AuthorSearchParams struct {
	// Query is the author search string.
	Query string

	// Offset is the number of initial items to skip.
	Offset *int

	// Limit is the maximum number of results to return.
	Limit *int

	// Fields is a comma-separated list of fields to include in the response.
	Fields string
}

// PaperFilters holds the filter set shared by the paper search operations.
// Every field is forwarded under its literal upstream query parameter name.
type PaperFilters struct {
	// Fields is a comma-separated list of fields to include in the response.
	Fields string

	// PublicationTypes filters by publication type (comma-separated).
	PublicationTypes string

	// OpenAccessPDF restricts results to papers with an open access PDF.
	OpenAccessPDF string

	// MinCitationCount is the citation-count floor.
	MinCitationCount string

	// PublicationDateOrYear filters by exact date or year range.
	PublicationDateOrYear string

	// Year filters by publication year.
	Year string

	// Venue filters by publication venue (comma-separated).
	Venue string

	// FieldsOfStudy filters by field of study (comma-separated).
	FieldsOfStudy string
}

// RelevanceSearchParams holds the parameters for the paper relevance search.
type RelevanceSearchParams struct {
	// Query is the paper search string.
	Query string

	PaperFilters

	// Offset is the number of initial items to skip.
	Offset *int

	// Limit is the maximum number of results to return.
	Limit *int
}

// BulkSearchParams holds the parameters for the bulk paper search.
type BulkSearchParams struct {
	// Query is the paper search string.
	Query string

	// Token is the continuation token from a previous bulk search response.
	Token string

	// Sort specifies the sort field and order (e.g. "citationCount:desc").
	Sort string

	PaperFilters
}

// TitleSearchParams holds the parameters for the best-title-match search.
type TitleSearchParams struct {
	// Query is the paper title to match.
	Query string

	PaperFilters
}

// SnippetSearchParams holds the parameters for the text-snippet search.
type SnippetSearchParams struct {
	// Query is the snippet search string.
	Query string

	// Limit is the maximum number of snippet results to return.
	Limit *int
}

// setString adds key=val to q unless val is empty.
func setString(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// setInt adds key=val to q unless val is nil. Zero is a valid value.
func setInt(q url.Values, key string, val *int) {
	if val != nil {
		q.Set(key, strconv.Itoa(*val))
	}
}

// values returns the query parameters for the shared paper filter set.
func (f PaperFilters) values() url.Values {
	q := url.Values{}
	setString(q, "fields", f.Fields)
	setString(q, "publicationTypes", f.PublicationTypes)
	setString(q, "openAccessPdf", f.OpenAccessPDF)
	setString(q, "minCitationCount", f.MinCitationCount)
	setString(q, "publicationDateOrYear", f.PublicationDateOrYear)
	setString(q, "year", f.Year)
	setString(q, "venue", f.Venue)
	setString(q, "fieldsOfStudy", f.FieldsOfStudy)
	return q
}

// values returns the query parameters for a page of results.
func (p PageParams) values() url.Values {
	q := url.Values{}
	setInt(q, "offset", p.Offset)
	setInt(q, "limit", p.Limit)
	setString(q, "fields", p.Fields)
	return q
}
