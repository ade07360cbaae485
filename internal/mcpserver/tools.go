package mcpserver

import (
	"context"

	"github.com/helixir/semanticscholar-mcp/internal/scholar"
)

// Tool inputs mirror the upstream parameter names exactly; unset optional
// fields are omitted from the outgoing request.

type authorBatchInput struct {
	IDs    []string `json:"ids,omitempty" jsonschema:"list of author identifiers to look up"`
	Fields string   `json:"fields,omitempty" jsonschema:"comma-separated list of author fields to include in the response"`
}

type authorSearchInput struct {
	Query  string `json:"query" jsonschema:"search query string for author search"`
	Offset *int   `json:"offset,omitempty" jsonschema:"number of initial results to skip for pagination"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"maximum number of results to return"`
	Fields string `json:"fields,omitempty" jsonschema:"comma-separated list of author fields to include in the response"`
}

type authorInput struct {
	AuthorID string `json:"author_id" jsonschema:"Semantic Scholar author identifier"`
	Fields   string `json:"fields,omitempty" jsonschema:"comma-separated list of author fields to include in the response"`
}

type authorPapersInput struct {
	AuthorID string `json:"author_id" jsonschema:"Semantic Scholar author identifier"`
	Offset   *int   `json:"offset,omitempty" jsonschema:"number of initial results to skip for pagination"`
	Limit    *int   `json:"limit,omitempty" jsonschema:"maximum number of papers to return"`
	Fields   string `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
}

type autocompleteInput struct {
	Query string `json:"query" jsonschema:"partial paper title to retrieve autocomplete suggestions for"`
}

type paperBatchInput struct {
	IDs    []string `json:"ids,omitempty" jsonschema:"list of paper identifiers to look up"`
	Fields string   `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
}

type relevanceSearchInput struct {
	Query                 string `json:"query" jsonschema:"paper search query string"`
	Fields                string `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
	PublicationTypes      string `json:"publicationTypes,omitempty" jsonschema:"comma-separated list of publication types to filter by"`
	OpenAccessPDF         string `json:"openAccessPdf,omitempty" jsonschema:"restrict results to papers with an open access PDF"`
	MinCitationCount      string `json:"minCitationCount,omitempty" jsonschema:"minimum number of citations a paper must have"`
	PublicationDateOrYear string `json:"publicationDateOrYear,omitempty" jsonschema:"publication date or year range to filter by"`
	Year                  string `json:"year,omitempty" jsonschema:"publication year to filter by"`
	Venue                 string `json:"venue,omitempty" jsonschema:"publication venue to filter by"`
	FieldsOfStudy         string `json:"fieldsOfStudy,omitempty" jsonschema:"comma-separated list of fields of study to filter by"`
	Offset                *int   `json:"offset,omitempty" jsonschema:"number of initial results to skip for pagination"`
	Limit                 *int   `json:"limit,omitempty" jsonschema:"maximum number of results to return"`
}

type bulkSearchInput struct {
	Query                 string `json:"query" jsonschema:"paper search query string"`
	Token                 string `json:"token,omitempty" jsonschema:"continuation token from a previous bulk search response"`
	Fields                string `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
	Sort                  string `json:"sort,omitempty" jsonschema:"sort field and order, e.g. citationCount:desc"`
	PublicationTypes      string `json:"publicationTypes,omitempty" jsonschema:"comma-separated list of publication types to filter by"`
	OpenAccessPDF         string `json:"openAccessPdf,omitempty" jsonschema:"restrict results to papers with an open access PDF"`
	MinCitationCount      string `json:"minCitationCount,omitempty" jsonschema:"minimum number of citations a paper must have"`
	PublicationDateOrYear string `json:"publicationDateOrYear,omitempty" jsonschema:"publication date or year range to filter by"`
	Year                  string `json:"year,omitempty" jsonschema:"publication year to filter by"`
	Venue                 string `json:"venue,omitempty" jsonschema:"publication venue to filter by"`
	FieldsOfStudy         string `json:"fieldsOfStudy,omitempty" jsonschema:"comma-separated list of fields of study to filter by"`
}

type titleSearchInput struct {
	Query                 string `json:"query" jsonschema:"paper title to match"`
	Fields                string `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
	PublicationTypes      string `json:"publicationTypes,omitempty" jsonschema:"comma-separated list of publication types to filter by"`
	OpenAccessPDF         string `json:"openAccessPdf,omitempty" jsonschema:"restrict results to papers with an open access PDF"`
	MinCitationCount      string `json:"minCitationCount,omitempty" jsonschema:"minimum number of citations a paper must have"`
	PublicationDateOrYear string `json:"publicationDateOrYear,omitempty" jsonschema:"publication date or year range to filter by"`
	Year                  string `json:"year,omitempty" jsonschema:"publication year to filter by"`
	Venue                 string `json:"venue,omitempty" jsonschema:"publication venue to filter by"`
	FieldsOfStudy         string `json:"fieldsOfStudy,omitempty" jsonschema:"comma-separated list of fields of study to filter by"`
}

type paperInput struct {
	PaperID string `json:"paper_id" jsonschema:"Semantic Scholar paper identifier"`
	Fields  string `json:"fields,omitempty" jsonschema:"comma-separated list of paper fields to include in the response"`
}

type paperPageInput struct {
	PaperID string `json:"paper_id" jsonschema:"Semantic Scholar paper identifier"`
	Offset  *int   `json:"offset,omitempty" jsonschema:"number of initial results to skip for pagination"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"maximum number of results to return"`
	Fields  string `json:"fields,omitempty" jsonschema:"comma-separated list of fields to include in the response"`
}

type snippetSearchInput struct {
	Query string `json:"query" jsonschema:"text to search for in paper snippets"`
	Limit *int   `json:"limit,omitempty" jsonschema:"maximum number of snippet results to return"`
}

// filters maps the shared search filter inputs onto adapter parameters.
func filters(fields, publicationTypes, openAccessPDF, minCitationCount, publicationDateOrYear, year, venue, fieldsOfStudy string) scholar.PaperFilters {
	return scholar.PaperFilters{
		Fields:                fields,
		PublicationTypes:      publicationTypes,
		OpenAccessPDF:         openAccessPDF,
		MinCitationCount:      minCitationCount,
		PublicationDateOrYear: publicationDateOrYear,
		Year:                  year,
		Venue:                 venue,
		FieldsOfStudy:         fieldsOfStudy,
	}
}

// registerTools registers all tools in their fixed discovery order.
func (s *Server) registerTools() {
	addTool(s, "post_graph_get_authors",
		"Look up a batch of authors by id list, optionally selecting the fields to include in the response.",
		func(ctx context.Context, in authorBatchInput) (any, error) {
			return s.scholar.GetAuthorsBatch(ctx, scholar.BatchParams{IDs: in.IDs, Fields: in.Fields})
		})

	addTool(s, "get_graph_get_author_search",
		"Search for authors by query string with optional pagination and field selection.",
		func(ctx context.Context, in authorSearchInput) (any, error) {
			return s.scholar.SearchAuthors(ctx, scholar.AuthorSearchParams{
				Query:  in.Query,
				Offset: in.Offset,
				Limit:  in.Limit,
				Fields: in.Fields,
			})
		})

	addTool(s, "get_graph_get_author",
		"Retrieve a single author by id, optionally selecting the fields to include in the response.",
		func(ctx context.Context, in authorInput) (any, error) {
			return s.scholar.GetAuthor(ctx, in.AuthorID, in.Fields)
		})

	addTool(s, "get_graph_get_author_papers",
		"List the papers of an author with optional pagination and field selection.",
		func(ctx context.Context, in authorPapersInput) (any, error) {
			return s.scholar.GetAuthorPapers(ctx, in.AuthorID, scholar.PageParams{
				Offset: in.Offset,
				Limit:  in.Limit,
				Fields: in.Fields,
			})
		})

	addTool(s, "get_graph_get_paper_autocomplete",
		"Suggest paper title completions for a partial query string.",
		func(ctx context.Context, in autocompleteInput) (any, error) {
			return s.scholar.AutocompletePaper(ctx, in.Query)
		})

	addTool(s, "post_graph_get_papers",
		"Look up a batch of papers by id list, optionally selecting the fields to include in the response.",
		func(ctx context.Context, in paperBatchInput) (any, error) {
			return s.scholar.GetPapersBatch(ctx, scholar.BatchParams{IDs: in.IDs, Fields: in.Fields})
		})

	addTool(s, "get_graph_paper_relevance_search",
		"Search for papers ranked by relevance, with filters for publication type, open access, citation count, date, venue, and field of study.",
		func(ctx context.Context, in relevanceSearchInput) (any, error) {
			return s.scholar.SearchPapersRelevance(ctx, scholar.RelevanceSearchParams{
				Query:        in.Query,
				PaperFilters: filters(in.Fields, in.PublicationTypes, in.OpenAccessPDF, in.MinCitationCount, in.PublicationDateOrYear, in.Year, in.Venue, in.FieldsOfStudy),
				Offset:       in.Offset,
				Limit:        in.Limit,
			})
		})

	addTool(s, "get_graph_paper_bulk_search",
		"Search for papers in bulk with continuation-token paging, sorting, and the standard filter set.",
		func(ctx context.Context, in bulkSearchInput) (any, error) {
			return s.scholar.SearchPapersBulk(ctx, scholar.BulkSearchParams{
				Query:        in.Query,
				Token:        in.Token,
				Sort:         in.Sort,
				PaperFilters: filters(in.Fields, in.PublicationTypes, in.OpenAccessPDF, in.MinCitationCount, in.PublicationDateOrYear, in.Year, in.Venue, in.FieldsOfStudy),
			})
		})

	addTool(s, "get_graph_paper_title_search",
		"Retrieve the paper that best matches a title, with the standard filter set.",
		func(ctx context.Context, in titleSearchInput) (any, error) {
			return s.scholar.MatchPaperTitle(ctx, scholar.TitleSearchParams{
				Query:        in.Query,
				PaperFilters: filters(in.Fields, in.PublicationTypes, in.OpenAccessPDF, in.MinCitationCount, in.PublicationDateOrYear, in.Year, in.Venue, in.FieldsOfStudy),
			})
		})

	addTool(s, "get_graph_get_paper",
		"Retrieve a single paper by id, optionally selecting the fields to include in the response.",
		func(ctx context.Context, in paperInput) (any, error) {
			return s.scholar.GetPaper(ctx, in.PaperID, in.Fields)
		})

	addTool(s, "get_graph_get_paper_authors",
		"List the authors of a paper with optional pagination and field selection.",
		func(ctx context.Context, in paperPageInput) (any, error) {
			return s.scholar.GetPaperAuthors(ctx, in.PaperID, scholar.PageParams{
				Offset: in.Offset,
				Limit:  in.Limit,
				Fields: in.Fields,
			})
		})

	addTool(s, "get_graph_get_paper_citations",
		"List the citations of a paper with optional pagination and field selection.",
		func(ctx context.Context, in paperPageInput) (any, error) {
			return s.scholar.GetPaperCitations(ctx, in.PaperID, scholar.PageParams{
				Offset: in.Offset,
				Limit:  in.Limit,
				Fields: in.Fields,
			})
		})

	addTool(s, "get_graph_get_paper_references",
		"List the references of a paper with optional pagination and field selection.",
		func(ctx context.Context, in paperPageInput) (any, error) {
			return s.scholar.GetPaperReferences(ctx, in.PaperID, scholar.PageParams{
				Offset: in.Offset,
				Limit:  in.Limit,
				Fields: in.Fields,
			})
		})

	addTool(s, "get_snippet_search",
		"Search paper text snippets for a query string with an optional result-count limit.",
		func(ctx context.Context, in snippetSearchInput) (any, error) {
			return s.scholar.SearchSnippets(ctx, scholar.SnippetSearchParams{
				Query: in.Query,
				Limit: in.Limit,
			})
		})
}
