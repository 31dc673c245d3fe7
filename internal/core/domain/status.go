package domain

// IndexingStatus counts documents by processing state, either for one
// collection or across every collection the API key owns.
type IndexingStatus struct {
	NumDocuments         int
	NumParsingDocuments  int
	NumIndexingDocuments int
	NumIndexedDocuments  int
	NumFailedDocuments   int
}
