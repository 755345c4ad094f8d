package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Aashish23092/pan-extraction-service/client"
	"github.com/Aashish23092/pan-extraction-service/config"
	"github.com/Aashish23092/pan-extraction-service/handler"
	"github.com/Aashish23092/pan-extraction-service/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 reads the tessdata path from the environment
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	panService := service.NewPANService(tesseractClient, pdfProcessor)

	// Initialize handler layer
	panHandler := handler.NewPANHandler(panService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()
	router.Use(corsMiddleware())

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		pan := api.Group("/pan")
		{
			pan.POST("/extract", panHandler.ExtractPAN)
		}
	}

	// Start server
	log.Printf("Starting PAN extraction server on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware mirrors the headers browsers need for cross-origin uploads
// and short-circuits preflight requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
