// Package youtube implements the upstream search gateway over the YouTube Data API v3.
//
// The client is stateless: it translates internal query parameters into API
// calls, normalizes responses, and surfaces every transport or HTTP failure as
// a single upstream error class. No retry, no backoff, no caching.
//
// The API offers no native "related videos" endpoint; GetRelated substitutes a
// relevance-ordered search built from the first three words of the source
// video's title. This is a documented heuristic, not a similarity algorithm.
package youtube
