package retrieval

import (
	"encoding/json"
	"fmt"
	"os"
)

// knowledge files are nested category -> subcategory -> []record
type rawRecord struct {
	ChunkId  string `json:"chunk_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Section  string `json:"section"`
	Document string `json:"document"`
	Page     int    `json:"page"`
}

// LoadFile parses a knowledge-base JSON file into documents. Records
// missing a chunk id or question/answer text are skipped, not fatal;
// the skipped count is returned alongside.
func LoadFile(path string) ([]Document, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read knowledge file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes the nested knowledge-base JSON structure.
func Parse(raw []byte) ([]Document, int, error) {
	var root map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, 0, fmt.Errorf("decode knowledge file: %w", err)
	}

	var docs []Document
	skipped := 0
	for _, subcategories := range root {
		for _, rawList := range subcategories {
			var records []json.RawMessage
			if err := json.Unmarshal(rawList, &records); err != nil {
				// subcategory value is not a list, skip it
				skipped++
				continue
			}
			for _, rawRec := range records {
				var rec rawRecord
				if err := json.Unmarshal(rawRec, &rec); err != nil {
					skipped++
					continue
				}
				if rec.ChunkId == "" || rec.Question == "" || rec.Answer == "" {
					skipped++
					continue
				}
				docs = append(docs, Document{
					ChunkId:      rec.ChunkId,
					Question:     rec.Question,
					Answer:       rec.Answer,
					Section:      rec.Section,
					DocumentName: rec.Document,
					Page:         rec.Page,
				})
			}
		}
	}
	return docs, skipped, nil
}
