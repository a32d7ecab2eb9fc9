package domain

// AssetRecord is one input row as read from the uploaded tabular file.
// Coordinates stay raw text until enrichment: a row whose coordinates
// fail to parse must not abort the batch, it just yields empty outputs.
type AssetRecord struct {
	Name   string
	Lat    string
	Long   string
	Sector string
}

// EnrichedRecord is an input row plus the two resolved labels. A nil
// label means no match (or unparseable coordinates), which downstream
// serialization renders as an empty cell.
type EnrichedRecord struct {
	AssetRecord
	Zone      *string
	Freguesia *string
}
