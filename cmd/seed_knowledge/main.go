package main

import (
	"context"
	"flag"
	"log"
	"os"

	"educonsult-be/internal/entity"
	"educonsult-be/internal/repository/implementation"
	"educonsult-be/pkg/database"
	"educonsult-be/pkg/retrieval"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	filePath := flag.String("file", "data/chunked_education_data.json", "path to the chunked knowledge JSON file")
	flag.Parse()

	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding knowledge base from %s\n", *filePath)

	// 3. Parse the knowledge file
	docs, skipped, err := retrieval.LoadFile(*filePath)
	if err != nil {
		color.Red("Failed to parse knowledge file: %v", err)
		os.Exit(1)
	}
	if skipped > 0 {
		color.Yellow("Skipped %d malformed records", skipped)
	}

	// 4. Upsert by chunk id so reseeding stays idempotent
	repo := implementation.NewRAGDocumentRepository(db)
	ctx := context.Background()

	loaded := 0
	for _, doc := range docs {
		record := &entity.RAGDocument{
			ChunkId:  doc.ChunkId,
			Question: doc.Question,
			Answer:   doc.Answer,
			Section:  doc.Section,
			Document: doc.DocumentName,
			Page:     doc.Page,
			IsActive: true,
		}
		if err := repo.UpsertByChunkId(ctx, record); err != nil {
			color.Red("Failed to upsert chunk %s: %v", doc.ChunkId, err)
			os.Exit(1)
		}
		loaded++
	}

	color.Green("✅ Success: %d knowledge records loaded", loaded)
}
