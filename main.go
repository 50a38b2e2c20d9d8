package main

import (
	"os"

	"snapfeed-backend/db"
	_ "snapfeed-backend/docs"
	"snapfeed-backend/routes"
	"snapfeed-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API Snapfeed Backend
// @version 1.0
// @description API du réseau social Snapfeed
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = utils.LogWriter()

	// Initialiser la base de données
	db.InitDB()

	// Initialiser Cloudinary
	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Avertissement: Initialisation de Cloudinary a échoué")
		utils.LogInfo("Le téléchargement de médias ne fonctionnera pas correctement")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		utils.LogError(err, "Erreur lors du démarrage du serveur")
		os.Exit(1)
	}
}
