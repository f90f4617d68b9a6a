package domain

import (
	"net/url"
	"strings"
)

// UnknownDocumentName is the display marker for documents with no usable
// URI, title or name.
const UnknownDocumentName = "unknown document"

// DisplayName derives a human-readable name for a result document.
// Preference order: decoded final URI segment, then title, then name,
// then the unknown-document marker.
func (r Result) DisplayName() string {
	if name := DocumentNameFromURI(r.URI); name != "" {
		return name
	}
	if r.Title != "" {
		return r.Title
	}
	if r.Name != "" {
		return r.Name
	}
	return UnknownDocumentName
}

// DocumentNameFromURI reduces a source URI to its percent-decoded final
// path segment. Returns "" for an empty URI or one ending in a separator,
// so callers can continue down the fallback chain.
func DocumentNameFromURI(uri string) string {
	if uri == "" {
		return ""
	}

	segment := uri
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		segment = uri[idx+1:]
	}
	if segment == "" {
		return ""
	}

	decoded, err := url.PathUnescape(segment)
	if err != nil {
		// Malformed escapes: show the raw segment rather than nothing.
		return segment
	}
	return decoded
}

// DocumentNames builds the result-id to display-name table used to
// resolve citation reference ids.
func (r *SearchResponse) DocumentNames() map[string]string {
	names := make(map[string]string, len(r.Results))
	for _, result := range r.Results {
		if result.ID != "" {
			names[result.ID] = result.DisplayName()
		}
	}
	return names
}

// CitedDocumentNames resolves the summary's citation sources to display
// names, deduplicated in discovery order. Reference ids are resolved
// through the response's own results first; unresolved sources fall back
// to decoding their URI. Sources with neither are skipped.
func (r *SearchResponse) CitedDocumentNames() []string {
	if r.Summary == nil {
		return nil
	}

	names := r.DocumentNames()
	seen := make(map[string]bool)
	var cited []string

	for _, citation := range r.Summary.Citations {
		for _, source := range citation.Sources {
			name := ""
			if source.ReferenceID != "" {
				name = names[source.ReferenceID]
			}
			if name == "" && source.URI != "" {
				name = DocumentNameFromURI(source.URI)
			}
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			cited = append(cited, name)
		}
	}

	return cited
}
