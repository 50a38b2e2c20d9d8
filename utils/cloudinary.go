package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var cld *cloudinary.Cloudinary

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}
var videoExtensions = []string{".mp4", ".mov", ".webm", ".avi", ".mkv"}

const maxMediaSize = 50 * 1024 * 1024 // 50MB

// InitCloudinary initialise la connexion à Cloudinary
func InitCloudinary() error {
	var err error

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("les variables d'environnement Cloudinary ne sont pas définies")
	}

	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("erreur lors de l'initialisation de Cloudinary: %v", err)
	}

	// Vérifier la connexion à Cloudinary
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("erreur lors de la vérification de la connexion à Cloudinary: %v", err)
	}

	LogSuccess("Cloudinary initialisé avec succès")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

// MediaType retourne "image" ou "video" selon l'extension, ou "" si non supporté
func MediaType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range imageExtensions {
		if ext == e {
			return "image"
		}
	}
	for _, e := range videoExtensions {
		if ext == e {
			return "video"
		}
	}
	return ""
}

// UploadMedia télécharge une image ou une vidéo vers Cloudinary et retourne
// l'URL sécurisée, le public ID (pour la suppression), le type et le nom du fichier
func UploadMedia(file *multipart.FileHeader, folder string) (url string, publicID string, fileType string, fileName string, err error) {
	fileType = MediaType(file.Filename)
	if fileType == "" {
		return "", "", "", "", fmt.Errorf("format de fichier non supporté. Utilisez une image (JPG, PNG, GIF, WEBP, BMP) ou une vidéo (MP4, MOV, WEBM)")
	}

	if file.Size > maxMediaSize {
		return "", "", "", "", fmt.Errorf("fichier trop volumineux. Maximum 50MB autorisé")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", "", "", "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", "", "", "", fmt.Errorf("erreur lors de l'ouverture du fichier: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		PublicID:       fmt.Sprintf("%s_%s", fileType, uuid.New().String()),
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(true),
		ResourceType:   "auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		LogError(err, "Erreur lors du téléchargement vers Cloudinary")
		return "", "", "", "", fmt.Errorf("erreur lors du téléchargement vers Cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", "", "", "", fmt.Errorf("URL sécurisée vide dans la réponse de Cloudinary")
	}

	return uploadResult.SecureURL, uploadResult.PublicID, fileType, file.Filename, nil
}

// DeleteMedia supprime un fichier de Cloudinary via son public ID.
// L'échec est loggé mais non bloquant: le média orphelin sera nettoyé à la main
func DeleteMedia(publicID string, fileType string) bool {
	if publicID == "" {
		return false
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			LogError(err, "Cloudinary non initialisé, suppression impossible")
			return false
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resourceType := "image"
	if fileType == "video" {
		resourceType = "video"
	}

	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		LogError(err, "Erreur lors de la suppression du média Cloudinary")
		return false
	}
	return true
}
