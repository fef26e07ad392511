package dto

type LoadKnowledgeRequest struct {
	FilePath string `json:"file_path" validate:"required"`
}

type LoadKnowledgeResponse struct {
	DocumentsLoaded int `json:"documents_loaded"`
	RecordsSkipped  int `json:"records_skipped"`
}

type SearchKnowledgeRequest struct {
	Query string `json:"query" validate:"required"`
	K     int    `json:"k" validate:"omitempty,min=1,max=20"`
}

type KnowledgeMatchDTO struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Section  string  `json:"section"`
	Document string  `json:"document"`
	Score    float64 `json:"score"`
	ChunkId  string  `json:"chunk_id"`
}

type SearchKnowledgeResponse struct {
	Results []KnowledgeMatchDTO `json:"results"`
}
