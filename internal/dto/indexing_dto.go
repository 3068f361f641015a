package dto

// PublishIndexDocumentMessage is the payload of one async indexing request.
type PublishIndexDocumentMessage struct {
	SourceId string `json:"source_id"`
	RawText  string `json:"raw_text"`
}
